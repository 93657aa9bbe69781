package dto

import "time"

// LoginRequest credenciales del propietario.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials lo que haya disponible para abrir sesión: token o email/password.
type Credentials struct {
	AccessToken string
	Email       string
	Password    string
}

// SessionResponse propietario resuelto. Token solo viene cuando se emitió uno nuevo (login).
type SessionResponse struct {
	OwnerID   string     `json:"owner_id"`
	Email     string     `json:"email"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
