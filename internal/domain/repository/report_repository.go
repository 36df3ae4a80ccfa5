package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult agregado de ventas en un rango [start, end] inclusivo.
// Rango vacío produce el cero de cada campo, no un error.
type SalesSummaryResult struct {
	TotalAmount      decimal.Decimal
	TransactionCount int64
	AverageAmount    decimal.Decimal
}

// SalesDetailRow fila desnormalizada del detalle de ventas; el nombre del
// cliente se resuelve en la consulta ($lookup), no se almacena.
type SalesDetailRow struct {
	SaleID       string
	CustomerName string
	ItemCount    int64
	Total        decimal.Decimal
	Date         time.Time
	Seller       string
}

// CountryCount clientes agrupados por país.
type CountryCount struct {
	Country string
	Count   int64
}

// ReportRepository consultas de agregación de solo lectura.
type ReportRepository interface {
	SalesSummary(ctx context.Context, start, end time.Time) (SalesSummaryResult, error)
	SalesDetail(ctx context.Context, start, end time.Time) ([]SalesDetailRow, error)
	// CustomersByCountry devuelve el conteo por país, descendente por total.
	CustomersByCountry(ctx context.Context) ([]CountryCount, error)
}
