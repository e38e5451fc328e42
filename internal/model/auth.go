package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type VerifyResponse struct {
	Valid bool      `json:"valid"`
	User  *AuthUser `json:"user,omitempty"`
}

// AuthUser is the identity resolved from a verified token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
