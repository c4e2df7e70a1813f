package payrun

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft    = "DRAFT"
	StatusApproved = "APPROVED"
	StatusClosed   = "CLOSED"
)

// PayRun is one payroll cycle for a company. Payslips hang off it and
// inherit its mutability: DRAFT runs can be edited, APPROVED and CLOSED
// runs cannot.
type PayRun struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string    `gorm:"type:varchar(100);not null"`
	PeriodType  string    `gorm:"type:varchar(10);not null"`
	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	Status string `gorm:"type:varchar(10);not null;default:'DRAFT';index"`

	// Aggregates over the generated payslips, in minor currency units.
	TotalGross      int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64 `gorm:"type:bigint;not null;default:0"`
	TotalNet        int64 `gorm:"type:bigint;not null;default:0"`

	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedAt *time.Time `gorm:"type:timestamptz"`
	ClosedAt   *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayRun) TableName() string {
	return "pay_runs"
}

func ValidStatus(v string) bool {
	switch v {
	case StatusDraft, StatusApproved, StatusClosed:
		return true
	}
	return false
}

// CanTransition encodes the one-way lifecycle. DRAFT moves to APPROVED,
// APPROVED moves to CLOSED, nothing leaves CLOSED.
func CanTransition(from, to string) bool {
	switch {
	case from == StatusDraft && to == StatusApproved:
		return true
	case from == StatusApproved && to == StatusClosed:
		return true
	}
	return false
}
