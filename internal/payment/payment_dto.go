package payment

type CreatePaymentRequest struct {
	PayslipID string  `json:"payslip_id" binding:"required,uuid"`
	Amount    int64   `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=CASH BANK_TRANSFER ORANGE_MONEY WAVE"`
	Reference *string `json:"reference" binding:"omitempty,max=120"`
	Notes     *string `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount    *int64  `json:"amount" binding:"omitempty,gt=0"`
	Method    *string `json:"method" binding:"omitempty,oneof=CASH BANK_TRANSFER ORANGE_MONEY WAVE"`
	Reference *string `json:"reference" binding:"omitempty,max=120"`
	Notes     *string `json:"notes"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	PayslipID string  `json:"payslip_id"`
	CompanyID string  `json:"company_id"`
	Amount    int64   `json:"amount"`
	Method    string  `json:"method"`
	Reference *string `json:"reference,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}

// PaymentResult pairs the persisted payment with the payslip status the
// operation re-derived.
type PaymentResult struct {
	Payment   PaymentResponse `json:"payment"`
	NewStatus string          `json:"new_status"`
}
