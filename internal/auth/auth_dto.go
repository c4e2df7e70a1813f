package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=SUPERADMIN ADMIN CAISSIER VIGILE"`
	CompanyID string `json:"company_id" binding:"omitempty,uuid"`
}

type AuthResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
}
