package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del minimarket.
// El stock vive en un registro companion 1:1 (ver Stock).
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Category     string
	RegisteredAt time.Time
}

// Stock cantidad disponible de un producto.
type Stock struct {
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}

// ProductWithStock producto con su cantidad resuelta en la consulta.
type ProductWithStock struct {
	Product
	Stock int64
}
