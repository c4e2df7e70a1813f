package payrun_test

import (
	"testing"
	"time"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/company"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun"
	payrunerrors "github.com/Diome1804/Gestion-Salaire-sub000/internal/payrun/errors"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name       string
		periodType string
		anchor     time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "monthly mid-month",
			periodType: company.PeriodMonthly,
			anchor:     time.Date(2026, 2, 17, 13, 45, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "monthly december wraps the year",
			periodType: company.PeriodMonthly,
			anchor:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "weekly anchored on a wednesday",
			periodType: company.PeriodWeekly,
			anchor:     time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "weekly anchored on a sunday stays in its week",
			periodType: company.PeriodWeekly,
			anchor:     time.Date(2026, 9, 6, 23, 0, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "weekly anchored on a monday starts there",
			periodType: company.PeriodWeekly,
			anchor:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "daily is a single day",
			periodType: company.PeriodDaily,
			anchor:     time.Date(2026, 9, 1, 17, 30, 0, 0, time.UTC),
			wantStart:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := payrun.ResolvePeriod(tt.periodType, tt.anchor)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolvePeriod_InvalidType(t *testing.T) {
	_, _, err := payrun.ResolvePeriod("QUARTERLY", time.Now())
	assert.ErrorIs(t, err, payrunerrors.ErrInvalidPeriodType)
}

func TestPeriodName(t *testing.T) {
	monthStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "February 2026", payrun.PeriodName(company.PeriodMonthly, monthStart, monthEnd))

	weekStart := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Week 31 Aug - 06 Sep 2026", payrun.PeriodName(company.PeriodWeekly, weekStart, weekEnd))

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01 September 2026", payrun.PeriodName(company.PeriodDaily, day, day))
}
