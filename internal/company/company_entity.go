package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PeriodMonthly = "MONTHLY"
	PeriodWeekly  = "WEEKLY"
	PeriodDaily   = "DAILY"
)

type Company struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(150);not null"`
	Currency   string    `gorm:"type:varchar(10);not null;default:'XOF'"`
	PeriodType string    `gorm:"type:varchar(10);not null;default:'MONTHLY'"`

	// Default rates in minor currency units, overridable per employee.
	HourlyRate   int64 `gorm:"type:bigint;not null;default:0"`
	DailyRate    int64 `gorm:"type:bigint;not null;default:0"`
	OvertimeRate int64 `gorm:"type:bigint;not null;default:0"`

	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

func ValidPeriodType(v string) bool {
	switch v {
	case PeriodMonthly, PeriodWeekly, PeriodDaily:
		return true
	}
	return false
}
