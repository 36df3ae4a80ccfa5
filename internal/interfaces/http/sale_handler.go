package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wramirez/minimarket-crm/internal/application/checkout"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
)

// SaleHandler maneja el checkout y el historial de facturas.
type SaleHandler struct {
	svc *checkout.Service
}

// NewSaleHandler construye el handler.
func NewSaleHandler(svc *checkout.Service) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Checkout POST /api/ventas
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	seller := GetPrincipal(c).Name
	resp, warnings, err := h.svc.Checkout(c.Context(), seller, in)
	if err != nil {
		// Carrito donde ninguna línea sobrevivió: las advertencias explican
		// qué pasó con cada una.
		if errors.Is(err, domain.ErrEmptyCheckout) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.WarningResponse{
				Message:  err.Error(),
				Warnings: warnings,
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListInvoices GET /api/ventas/facturas
func (h *SaleHandler) ListInvoices(c *fiber.Ctx) error {
	list, err := h.svc.ListInvoices(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetInvoice GET /api/ventas/:id/factura
func (h *SaleHandler) GetInvoice(c *fiber.Ctx) error {
	invoice, err := h.svc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// DownloadInvoicePDF GET /api/ventas/:id/factura/pdf
func (h *SaleHandler) DownloadInvoicePDF(c *fiber.Ctx) error {
	raw, filename, err := h.svc.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
