package dto

type RegisterRequest struct {
	Role       string `json:"role" form:"role" validate:"required,oneof=student teacher"`
	EmailPhone string `json:"email_phone" form:"email_phone" validate:"required,email_or_phone"`
	Password   string `json:"password" form:"password" validate:"required"`
	Name       string `json:"name" form:"name"`
	RollNumber string `json:"roll_number" form:"roll_number"`
	Department string `json:"department" form:"department"`
}

type LoginRequest struct {
	EmailPhone string `json:"email_phone" form:"email_phone" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	Redirect     string       `json:"redirect"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string `json:"id"`
	EmailPhone string `json:"email_phone"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number,omitempty"`
	Department string `json:"department,omitempty"`
	PhotoPath  string `json:"photo_path,omitempty"`
	Age        *int   `json:"age,omitempty"`
	BloodGroup string `json:"blood_group,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
