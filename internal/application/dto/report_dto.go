package dto

import "github.com/shopspring/decimal"

// SalesSummaryResponse agregado de ventas del período.
type SalesSummaryResponse struct {
	TotalAmount      decimal.Decimal `json:"total_ventas"`
	TransactionCount int64           `json:"num_transacciones"`
	AverageAmount    decimal.Decimal `json:"promedio_venta"`
}

// SalesDetailResponse fila del detalle de ventas.
type SalesDetailResponse struct {
	SaleID       string          `json:"venta_id"`
	CustomerName string          `json:"cliente"`
	ItemCount    int64           `json:"num_productos"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"fecha"`
	Seller       string          `json:"vendedor"`
}

// SalesReportResponse reporte completo para GET /api/reportes/ventas.
type SalesReportResponse struct {
	Period    string                `json:"periodo"` // semanal, mensual, anual
	Title     string                `json:"titulo"`
	StartDate string                `json:"fecha_inicio"`
	EndDate   string                `json:"fecha_fin"`
	Summary   SalesSummaryResponse  `json:"estadisticas"`
	Detail    []SalesDetailResponse `json:"ventas"`
}

// CountryCountResponse clientes por país, descendente por total.
type CountryCountResponse struct {
	Country string `json:"pais"`
	Count   int64  `json:"total"`
}
