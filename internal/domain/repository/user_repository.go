package repository

import (
	"context"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// UserPatch actualización parcial de una cuenta. nil = sin cambio.
// PasswordHash ya viene hasheado (bcrypt) desde el caso de uso.
type UserPatch struct {
	Name         *string
	Email        *string
	Role         *string
	Status       *string
	PasswordHash *string
}

// IsEmpty indica que el patch no toca ningún campo.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil &&
		p.Status == nil && p.PasswordHash == nil
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail busca por email normalizado (minúsculas).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (UpdateResult, error)
	// UpdatePasswordByEmail reemplaza el hash de contraseña (reset por correo).
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
