package payrun

import (
	"fmt"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	payrunerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun/errors"
)

// ResolvePeriod expands an anchor date into the full pay period that
// contains it: the calendar month for MONTHLY, the Monday-to-Sunday week
// for WEEKLY, the single day for DAILY. Bounds are date-truncated in UTC
// and inclusive on both ends.
func ResolvePeriod(periodType string, anchor time.Time) (time.Time, time.Time, error) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)

	switch periodType {
	case company.PeriodMonthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return start, end, nil

	case company.PeriodWeekly:
		// time.Weekday counts Sunday as 0; shift so Monday opens the week.
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 6)
		return start, end, nil

	case company.PeriodDaily:
		return day, day, nil
	}

	return time.Time{}, time.Time{}, payrunerrors.ErrInvalidPeriodType
}

// PeriodName builds the human label shown on payslips and in listings.
func PeriodName(periodType string, start, end time.Time) string {
	switch periodType {
	case company.PeriodMonthly:
		return start.Format("January 2006")
	case company.PeriodWeekly:
		return fmt.Sprintf("Week %s - %s", start.Format("02 Jan"), end.Format("02 Jan 2006"))
	default:
		return start.Format("02 January 2006")
	}
}
