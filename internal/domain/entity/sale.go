package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de una venta: snapshot del producto al momento del cobro.
type SaleItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
	Subtotal  decimal.Decimal
}

// Sale representa una venta procesada (carrito completo, una sola venta).
type Sale struct {
	ID         string
	CustomerID string
	Items      []SaleItem
	Total      decimal.Decimal
	Date       time.Time
	Seller     string
}

// Invoice copia desnormalizada de la venta; sobrevive a ediciones posteriores
// del cliente o de los productos. PDFData guarda el PDF generado en base64.
type Invoice struct {
	ID            string
	SaleID        string
	CustomerName  string
	CustomerEmail string
	Items         []SaleItem
	Total         decimal.Decimal
	Date          time.Time
	Seller        string
	PDFData       string
}
