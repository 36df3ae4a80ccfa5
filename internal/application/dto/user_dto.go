package dto

import "time"

// CreateUserRequest body para POST /api/usuarios (solo administrador).
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"rol,omitempty"`    // default: none
	Status   string `json:"estado,omitempty"` // default: inactivo
}

// UpdateUserRequest body para PUT /api/usuarios/:id. null = sin cambio.
// NewPassword, si viene, se hashea y reemplaza la contraseña.
type UpdateUserRequest struct {
	Name        *string `json:"nombre"`
	Email       *string `json:"email"`
	Role        *string `json:"rol"`
	Status      *string `json:"estado"`
	NewPassword *string `json:"nueva_password"`
}

// UserResponse cuenta en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	SeqID        int64     `json:"id_usuario"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	Role         string    `json:"rol"`
	Status       string    `json:"estado"`
	RegisteredAt time.Time `json:"fecha_registro"`
}
