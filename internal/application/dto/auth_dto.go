package dto

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// LoginRequest credenciales del formulario de ingreso.
type LoginRequest struct {
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Contraseña" validate:"required"`
}

// LoginResponse respuesta de POST /api/auth/login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        entity.User `json:"user"`
}

// ForgotPasswordRequest solicitud de restablecimiento de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email" label:"Email" validate:"required,email"`
}

// ChangePasswordRequest cambio de contraseña del usuario en sesión.
// Confirm solo existe en el formulario; no se envía al backend.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" label:"Contraseña actual" validate:"required"`
	NewPassword string `json:"newPassword" label:"Nueva contraseña" validate:"required,min=6"`
	Confirm     string `json:"-" label:"Confirmación" validate:"eqfield=NewPassword"`
}

// SessionStatus respuesta de GET /session/status (sondeo periódico del navegador).
type SessionStatus struct {
	Valid     bool     `json:"valid"`
	ExpiresAt int64    `json:"expires_at,omitempty"` // epoch en segundos
	Roles     []string `json:"roles,omitempty"`
}
