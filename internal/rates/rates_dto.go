package rates

// EffectiveRates is the per-employee rate sheet after override-vs-default
// resolution, in minor currency units.
type EffectiveRates struct {
	HourlyRate   int64 `json:"hourly_rate"`
	DailyRate    int64 `json:"daily_rate"`
	OvertimeRate int64 `json:"overtime_rate"`
}

// UpdateRatesRequest carries a partial update: nil fields stay untouched.
type UpdateRatesRequest struct {
	HourlyRate   *int64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	DailyRate    *int64 `json:"daily_rate" binding:"omitempty,gte=0"`
	OvertimeRate *int64 `json:"overtime_rate" binding:"omitempty,gte=0"`
}

func (r UpdateRatesRequest) empty() bool {
	return r.HourlyRate == nil && r.DailyRate == nil && r.OvertimeRate == nil
}
