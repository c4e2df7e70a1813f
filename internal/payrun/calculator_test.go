package payrun

import (
	"testing"

	"github.com/Diome1804/Gestion-Salaire-sub000/internal/employee"
	"github.com/Diome1804/Gestion-Salaire-sub000/internal/rates"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGross(t *testing.T) {
	tests := []struct {
		name string
		in   payslipInput
		want int64
	}{
		{
			name: "fixed contract earns the flat salary",
			in: payslipInput{
				Employee:    employee.Employee{ContractType: employee.ContractFixed, RateOrSalary: 500_000},
				PresentDays: 30,
			},
			want: 500_000,
		},
		{
			name: "freelance contract earns the flat amount",
			in: payslipInput{
				Employee: employee.Employee{ContractType: employee.ContractFreelance, RateOrSalary: 750_000},
			},
			want: 750_000,
		},
		{
			name: "daily contract earns daily rate per present day",
			in: payslipInput{
				Employee:    employee.Employee{ContractType: employee.ContractDaily, RateOrSalary: 99_999},
				Rates:       rates.EffectiveRates{DailyRate: 10_000},
				PresentDays: 3,
			},
			want: 30_000,
		},
		{
			name: "honoraire contract is paid by the day too",
			in: payslipInput{
				Employee:    employee.Employee{ContractType: employee.ContractHonoraire},
				Rates:       rates.EffectiveRates{DailyRate: 25_000},
				PresentDays: 4,
			},
			want: 100_000,
		},
		{
			name: "daily contract with zero attendance earns nothing",
			in: payslipInput{
				Employee: employee.Employee{ContractType: employee.ContractDaily},
				Rates:    rates.EffectiveRates{DailyRate: 10_000},
			},
			want: 0,
		},
		{
			name: "unknown contract type earns zero",
			in: payslipInput{
				Employee: employee.Employee{ContractType: "INTERN", RateOrSalary: 500_000},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateGross(tt.in))
		})
	}
}
