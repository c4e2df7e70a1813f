package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required,min=2,max=150"`
	Email        string `json:"email" binding:"omitempty,email"`
	ContractType string `json:"contract_type" binding:"required,oneof=FIXED DAILY FREELANCE HONORAIRE"`
	RateOrSalary int64  `json:"rate_or_salary" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name" binding:"omitempty,min=2,max=150"`
	Email        *string `json:"email" binding:"omitempty,email"`
	ContractType *string `json:"contract_type" binding:"omitempty,oneof=FIXED DAILY FREELANCE HONORAIRE"`
	RateOrSalary *int64  `json:"rate_or_salary" binding:"omitempty,gte=0"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email,omitempty"`
	ContractType string `json:"contract_type"`
	RateOrSalary int64  `json:"rate_or_salary"`

	CustomHourlyRate   *int64 `json:"custom_hourly_rate,omitempty"`
	CustomDailyRate    *int64 `json:"custom_daily_rate,omitempty"`
	CustomOvertimeRate *int64 `json:"custom_overtime_rate,omitempty"`

	IsActive bool `json:"is_active"`
}
