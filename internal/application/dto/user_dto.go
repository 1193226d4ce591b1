package dto

import "github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"

// LoginRequest entrada para login. Los punteros distinguen "clave ausente" (422)
// de "clave vacía" (400).
type LoginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// LogoutRequest entrada para logout.
type LogoutRequest struct {
	Token string `json:"token"`
}

// LoginResponse salida con token opaco de sesión.
type LoginResponse struct {
	Envelope
	User  entity.UserProfile `json:"user"`
	Token string             `json:"token"`
}
