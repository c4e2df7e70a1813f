package payslip

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentPending = "PENDING"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
)

type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayRunID   uuid.UUID `gorm:"type:uuid;not null;index:idx_payslip_run_employee,unique"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_payslip_run_employee,unique"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`

	// Amounts in minor currency units. NetSalary is clamped at zero,
	// deductions can exceed gross on paper but never push net negative.
	GrossSalary     int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary       int64 `gorm:"type:bigint;not null;default:0"`

	PaymentStatus string  `gorm:"type:varchar(10);not null;default:'PENDING';index"`
	Notes         *string `gorm:"type:text"`

	Deductions []Deduction `gorm:"foreignKey:PayslipID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// Deduction is one manually entered line on a payslip. Position keeps
// the list ordered the way the admin entered it.
type Deduction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(120);not null"`
	Amount    int64     `gorm:"type:bigint;not null;default:0"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (Deduction) TableName() string {
	return "payslip_deductions"
}

// ClampNet derives net salary from gross and total deductions with the
// zero floor every payslip carries.
func ClampNet(gross, totalDeductions int64) int64 {
	net := gross - totalDeductions
	if net < 0 {
		return 0
	}
	return net
}
