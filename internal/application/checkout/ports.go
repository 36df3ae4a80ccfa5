package checkout

import "github.com/wramirez/minimarket-crm/internal/domain/entity"

// InvoicePDFRenderer genera el PDF de la factura. La implementación vive en
// infrastructure/pdf; los tests usan un fake.
type InvoicePDFRenderer interface {
	RenderInvoice(invoice *entity.Invoice) ([]byte, error)
}
