package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MethodCash         = "CASH"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodOrangeMoney  = "ORANGE_MONEY"
	MethodWave         = "WAVE"
)

// Payment is one settlement against a payslip. The sum of a payslip's
// payments never exceeds its net salary.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Amount int64  `gorm:"type:bigint;not null"`
	Method string `gorm:"type:varchar(20);not null"`

	Reference *string `gorm:"type:varchar(120)"`
	Notes     *string `gorm:"type:text"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payment) TableName() string {
	return "payments"
}

func ValidMethod(v string) bool {
	switch v {
	case MethodCash, MethodBankTransfer, MethodOrangeMoney, MethodWave:
		return true
	}
	return false
}
