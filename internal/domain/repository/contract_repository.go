package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// ContractPatch actualización parcial de un contrato. nil = sin cambio.
// ClearEndDate pone fecha_fin en null (contratos que pasan a Indefinido).
type ContractPatch struct {
	Type         *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Salary       *decimal.Decimal
	Position     *string
	Notes        *string
}

// IsEmpty indica que el patch no toca ningún campo.
func (p ContractPatch) IsEmpty() bool {
	return p.Type == nil && p.StartDate == nil && p.EndDate == nil &&
		!p.ClearEndDate && p.Salary == nil && p.Position == nil && p.Notes == nil
}

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	// ListWithEmployee devuelve todos los contratos con nombre y documento del
	// empleado resueltos en la consulta, ordenados por registro descendente.
	// La búsqueda insensible a tildes se aplica en el caso de uso.
	ListWithEmployee(ctx context.Context) ([]*entity.ContractWithEmployee, error)
	Update(ctx context.Context, id string, patch ContractPatch) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
	// AttachPDF guarda el PDF generado (base64) sobre el contrato.
	AttachPDF(ctx context.Context, id, pdfBase64 string) error
}
