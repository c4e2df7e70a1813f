package company

type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	Currency     string `json:"currency" binding:"required,len=3"`
	PeriodType   string `json:"period_type" binding:"required,oneof=MONTHLY WEEKLY DAILY"`
	HourlyRate   int64  `json:"hourly_rate" binding:"gte=0"`
	DailyRate    int64  `json:"daily_rate" binding:"gte=0"`
	OvertimeRate int64  `json:"overtime_rate" binding:"gte=0"`
}

type UpdateCompanyRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=150"`
	Currency   *string `json:"currency" binding:"omitempty,len=3"`
	PeriodType *string `json:"period_type" binding:"omitempty,oneof=MONTHLY WEEKLY DAILY"`
	IsActive   *bool   `json:"is_active"`
}

type CompanyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	PeriodType   string `json:"period_type"`
	HourlyRate   int64  `json:"hourly_rate"`
	DailyRate    int64  `json:"daily_rate"`
	OvertimeRate int64  `json:"overtime_rate"`
	IsActive     bool   `json:"is_active"`
}
