package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
)

// ContractHandler maneja las peticiones HTTP de contratos.
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create POST /api/contratos
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	contract, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// List GET /api/contratos?q=
func (h *ContractHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/contratos/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	contract, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contract)
}

// Update PUT /api/contratos/:id
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete DELETE /api/contratos/:id
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// DownloadPDF GET /api/contratos/:id/pdf
func (h *ContractHandler) DownloadPDF(c *fiber.Ctx) error {
	raw, filename, err := h.uc.DownloadPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
