package payrun

import (
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"
)

// payslipInput is everything the gross calculation needs, gathered
// before any arithmetic so the function itself stays pure.
type payslipInput struct {
	Employee    employee.Employee
	Rates       rates.EffectiveRates
	PresentDays int64
}

// calculateGross derives the gross amount for one employee over one
// period. FIXED and FREELANCE contracts are paid their flat amount per
// period; DAILY and HONORAIRE contracts earn the effective daily rate
// for each day they were marked present. Unknown contract types earn
// zero rather than failing the whole run.
func calculateGross(in payslipInput) int64 {
	switch in.Employee.ContractType {
	case employee.ContractFixed, employee.ContractFreelance:
		return in.Employee.RateOrSalary
	case employee.ContractDaily, employee.ContractHonoraire:
		return in.Rates.DailyRate * in.PresentDays
	}
	return 0
}
