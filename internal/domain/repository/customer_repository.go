package repository

import (
	"context"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// CustomerPatch actualización parcial de un cliente.
// nil = sin cambio; los strings se persisten ya normalizados (trim, email en
// minúsculas).
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	Country *string
}

// IsEmpty indica que el patch no toca ningún campo.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.Address == nil && p.City == nil && p.Country == nil
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve clientes ordenados por fecha de registro descendente.
	// q filtra por substring case-insensitive sobre nombre/email/ciudad/país.
	List(ctx context.Context, q string) ([]*entity.Customer, error)
	Update(ctx context.Context, id string, patch CustomerPatch) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
