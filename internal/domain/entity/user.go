package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "administrador"
	RoleVendedor = "vendedor"
	RoleNone     = "none"
)

// User representa una cuenta del sistema.
type User struct {
	ID           string
	SeqID        int64
	Name         string
	Email        string // único, normalizado en minúsculas
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // administrador, vendedor, none
	Status       string // activo, inactivo
	RegisteredAt time.Time
}
