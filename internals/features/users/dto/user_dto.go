package dto

// ============================
// Request DTOs
// ============================

type ContactRequest struct {
	FullName string `json:"full_name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}

type VolunteerRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=128"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Response DTOs
// ============================

// UserGroupDTO is one row of the grouped user listing: which audience a
// known email belongs to.
type UserGroupDTO struct {
	Email string `json:"email"`
	Group string `json:"group"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}
