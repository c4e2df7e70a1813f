package payrun

import "github.com/Diome1804/Gestion-Salaire-sub000/internal/payslip"

type CreatePayRunRequest struct {
	// Optional anchor date inside the desired period, YYYY-MM-DD. The
	// period bounds are derived from it and the period type; when
	// omitted the current day anchors the period.
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`

	// Optional. Defaults to the company's configured period type.
	PeriodType string `json:"period_type" binding:"omitempty,oneof=MONTHLY WEEKLY DAILY"`

	// Optional. Defaults to a label derived from the period.
	Name string `json:"name" binding:"omitempty,max=100"`
}

type UpdatePayRunRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Status *string `json:"status" binding:"omitempty,oneof=DRAFT APPROVED CLOSED"`
}

type PayRunResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	PeriodType  string `json:"period_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`

	TotalGross      int64 `json:"total_gross"`
	TotalDeductions int64 `json:"total_deductions"`
	TotalNet        int64 `json:"total_net"`

	EmployeeCount int `json:"employee_count,omitempty"`

	CreatedBy  string  `json:"created_by"`
	ApprovedAt *string `json:"approved_at,omitempty"`
	ClosedAt   *string `json:"closed_at,omitempty"`

	Payslips []payslip.PayslipResponse `json:"payslips,omitempty"`
}
