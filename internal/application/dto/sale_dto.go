package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest línea del carrito: producto y cantidad. El precio se
// resuelve siempre en el servidor; nunca se acepta un total del cliente.
type CartItemRequest struct {
	ProductID string `json:"id"`
	Quantity  int64  `json:"cantidad"`
}

// CheckoutRequest body para POST /api/ventas.
type CheckoutRequest struct {
	CustomerID string            `json:"cliente"`
	Items      []CartItemRequest `json:"carrito"`
}

// SaleItemResponse línea aceptada con snapshot de precio y subtotal.
type SaleItemResponse struct {
	ProductID string          `json:"id"`
	Name      string          `json:"nombre"`
	UnitPrice decimal.Decimal `json:"precio"`
	Quantity  int64           `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse resultado del checkout: ids creados, total calculado en
// el servidor y advertencias por línea (producto inexistente, stock corto).
type CheckoutResponse struct {
	SaleID    string             `json:"venta_id"`
	InvoiceID string             `json:"factura_id"`
	Total     decimal.Decimal    `json:"total"`
	Items     []SaleItemResponse `json:"productos"`
	Warnings  []string           `json:"advertencias,omitempty"`
}

// InvoiceResponse factura del historial.
type InvoiceResponse struct {
	ID            string             `json:"id"`
	SaleID        string             `json:"venta_id"`
	CustomerName  string             `json:"cliente"`
	CustomerEmail string             `json:"cliente_email,omitempty"`
	Items         []SaleItemResponse `json:"productos"`
	Total         decimal.Decimal    `json:"total"`
	Date          time.Time          `json:"fecha"`
	Seller        string             `json:"vendedor"`
	HasPDF        bool               `json:"tiene_pdf"`
}
