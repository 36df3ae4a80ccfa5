package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	Name         string          `json:"nombre"`
	Price        decimal.Decimal `json:"precio"`
	Category     string          `json:"categoria,omitempty"`
	InitialStock int64           `json:"cantidad,omitempty"`
}

// UpdateProductRequest body para PUT /api/productos/:id. null = sin cambio.
// Stock fija la cantidad absoluta del registro companion.
type UpdateProductRequest struct {
	Name     *string          `json:"nombre"`
	Price    *decimal.Decimal `json:"precio"`
	Category *string          `json:"categoria"`
	Stock    *int64           `json:"cantidad"`
}

// ProductResponse producto con su stock actual.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Price        decimal.Decimal `json:"precio"`
	Category     string          `json:"categoria,omitempty"`
	Stock        int64           `json:"stock"`
	RegisteredAt time.Time       `json:"fecha_registro"`
}
