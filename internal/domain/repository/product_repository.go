package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// ProductPatch actualización parcial de un producto. nil = sin cambio.
type ProductPatch struct {
	Name     *string
	Price    *decimal.Decimal
	Category *string
}

// IsEmpty indica que el patch no toca ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Category == nil
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve productos con su stock resuelto ($lookup), ordenados por
	// registro descendente. q filtra por nombre/categoría.
	List(ctx context.Context, q string) ([]*entity.ProductWithStock, error)
	Update(ctx context.Context, id string, patch ProductPatch) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// StockRepository puerto para el registro companion de stock (1:1 producto).
type StockRepository interface {
	Get(ctx context.Context, productID string) (*entity.Stock, error)
	// Upsert fija la cantidad absoluta (alta de producto o ajuste manual).
	Upsert(ctx context.Context, stock *entity.Stock) error
	// Decrement descuenta qty solo si la cantidad actual alcanza: escritura
	// condicional de un solo documento, nunca deja el stock negativo.
	// applied=false si el producto no tiene stock suficiente (o no existe).
	Decrement(ctx context.Context, productID string, qty int64) (applied bool, err error)
	Delete(ctx context.Context, productID string) (DeleteResult, error)
}
