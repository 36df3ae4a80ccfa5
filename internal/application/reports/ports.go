package reports

import (
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

// PDFRenderer genera los reportes imprimibles. Implementado en
// infrastructure/pdf.
type PDFRenderer interface {
	RenderEmployeeReport(employees []*entity.Employee) ([]byte, error)
}

// ExcelRenderer genera las exportaciones a hoja de cálculo. Implementado en
// infrastructure/excel.
type ExcelRenderer interface {
	RenderEmployees(employees []*entity.Employee) ([]byte, error)
	RenderSalesDetail(title string, rows []repository.SalesDetailRow) ([]byte, error)
}
