package events

import "time"

const PayRunCreatedTopic = "payroll.payrun.created.v1"

// PayslipSummary is what the notification consumer forwards to each
// employee after a pay run is generated.
type PayslipSummary struct {
	PayslipID  string `json:"payslip_id"`
	EmployeeID string `json:"employee_id"`
	Gross      int64  `json:"gross"`
	Net        int64  `json:"net"`
}

type PayRunCreatedEvent struct {
	EventType   string           `json:"event_type"`
	PayRunID    string           `json:"pay_run_id"`
	CompanyID   string           `json:"company_id"`
	Name        string           `json:"name"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	TotalNet    int64            `json:"total_net"`
	Payslips    []PayslipSummary `json:"payslips"`
	CreatedBy   string           `json:"created_by"`
	OccurredAt  time.Time        `json:"occurred_at"`
}
