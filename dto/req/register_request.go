package req

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=8,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
