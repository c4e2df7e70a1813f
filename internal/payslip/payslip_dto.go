package payslip

type DeductionInput struct {
	Label  string `json:"label" binding:"required,max=120"`
	Amount int64  `json:"amount" binding:"gte=0"`
}

// UpdatePayslipRequest replaces the deduction list wholesale; nil means
// "leave deductions alone", an empty slice clears them.
type UpdatePayslipRequest struct {
	Deductions *[]DeductionInput `json:"deductions"`
	Notes      *string           `json:"notes"`
}

type DeductionResponse struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type PayslipResponse struct {
	ID              string              `json:"id"`
	PayRunID        string              `json:"pay_run_id"`
	EmployeeID      string              `json:"employee_id"`
	CompanyID       string              `json:"company_id"`
	GrossSalary     int64               `json:"gross_salary"`
	Deductions      []DeductionResponse `json:"deductions"`
	TotalDeductions int64               `json:"total_deductions"`
	NetSalary       int64               `json:"net_salary"`
	PaymentStatus   string              `json:"payment_status"`
	Notes           *string             `json:"notes,omitempty"`
}
