package repository

import (
	"context"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
}

// InvoiceRepository define el puerto de persistencia para Invoice
// (historial de facturas desnormalizado).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetBySaleID(ctx context.Context, saleID string) (*entity.Invoice, error)
	// List devuelve todas las facturas por fecha descendente.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// AttachPDF guarda el PDF renderizado (base64) sobre la factura.
	AttachPDF(ctx context.Context, id, pdfBase64 string) error
}
