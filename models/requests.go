package models

// RegisterRequest is the body of POST /api/auth/register.
// Role is deliberately absent: accounts always start as RoleUser.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
