package dto

import "time"

// SyncProfileRequest datos del perfil enviados tras el inicio de sesión.
// El rol siempre sale del token, nunca del cuerpo.
type SyncProfileRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileResponse perfil del usuario autenticado.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
