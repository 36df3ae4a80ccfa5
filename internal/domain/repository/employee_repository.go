package repository

import (
	"context"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// EmployeePatch actualización parcial de un empleado. nil = sin cambio.
type EmployeePatch struct {
	DocumentNumber *string
	Name           *string
	Surname        *string
	Age            *int
	Gender         *string
	Position       *string
	Email          *string
	Phone          *string
	Status         *string
	Notes          *string
}

// IsEmpty indica que el patch no toca ningún campo.
func (p EmployeePatch) IsEmpty() bool {
	return p.DocumentNumber == nil && p.Name == nil && p.Surname == nil &&
		p.Age == nil && p.Gender == nil && p.Position == nil &&
		p.Email == nil && p.Phone == nil && p.Status == nil && p.Notes == nil
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByDocument se usa para el pre-chequeo de unicidad del documento.
	GetByDocument(ctx context.Context, documentNumber string) (*entity.Employee, error)
	// List filtra por substring case-insensitive sobre nombre/apellido/documento.
	List(ctx context.Context, q string) ([]*entity.Employee, error)
	Update(ctx context.Context, id string, patch EmployeePatch) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
