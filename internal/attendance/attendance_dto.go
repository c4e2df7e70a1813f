package attendance

type ClockInRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Source      string  `json:"source" binding:"omitempty,oneof=MANUAL QR"`
	ExternalRef *string `json:"external_ref"`
	Notes       *string `json:"notes"`
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Notes      *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Status         string  `json:"status"`
	Source         string  `json:"source"`
	ExternalRef    *string `json:"external_ref,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
