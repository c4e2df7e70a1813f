package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContractFixed     = "FIXED"
	ContractDaily     = "DAILY"
	ContractFreelance = "FREELANCE"
	ContractHonoraire = "HONORAIRE"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"column:full_name;type:varchar(150);not null"`
	Email     string    `gorm:"type:varchar(255);index"`

	ContractType string `gorm:"type:varchar(20);not null"`

	// Base amount in minor units; meaning depends on the contract type
	// (monthly salary for FIXED/FREELANCE, informational for the rest).
	RateOrSalary int64 `gorm:"type:bigint;not null;default:0"`

	// Per-employee overrides. nil means "use the company default";
	// a stored zero is a deliberate zero override.
	CustomHourlyRate   *int64 `gorm:"type:bigint"`
	CustomDailyRate    *int64 `gorm:"type:bigint"`
	CustomOvertimeRate *int64 `gorm:"type:bigint"`

	IsActive  bool           `gorm:"not null;default:true;index"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func ValidContractType(v string) bool {
	switch v {
	case ContractFixed, ContractDaily, ContractFreelance, ContractHonoraire:
		return true
	}
	return false
}
