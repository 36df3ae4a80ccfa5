package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wramirez/minimarket-crm/internal/application/reports"
)

// ReportHandler reportes de ventas y clientes por país.
type ReportHandler struct {
	svc *reports.Service
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// SalesReport GET /api/reportes/ventas?periodo=semanal|mensual|anual
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	report, err := h.svc.SalesReport(c.Context(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ExportSalesExcel GET /api/reportes/ventas/exportar?periodo=
func (h *ReportHandler) ExportSalesExcel(c *fiber.Ctx) error {
	raw, filename, err := h.svc.ExportSalesExcel(c.Context(), c.Query("periodo"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// CustomersByCountry GET /api/reportes/clientes-por-pais
func (h *ReportHandler) CustomersByCountry(c *fiber.Ctx) error {
	counts, err := h.svc.CustomersByCountry(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(counts)
}
