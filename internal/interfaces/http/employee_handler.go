package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/application/reports"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados, incluidas las
// exportaciones del listado.
type EmployeeHandler struct {
	uc      *usecase.EmployeeUseCase
	reports *reports.Service
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, reports *reports.Service) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, reports: reports}
}

// Create POST /api/empleados
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// List GET /api/empleados?q=
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/empleados/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Update PUT /api/empleados/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete DELETE /api/empleados/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// ExportExcel GET /api/empleados/exportar/excel
func (h *EmployeeHandler) ExportExcel(c *fiber.Ctx) error {
	raw, filename, err := h.reports.ExportEmployeesExcel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// ExportPDF GET /api/empleados/exportar/pdf
func (h *EmployeeHandler) ExportPDF(c *fiber.Ctx) error {
	raw, filename, err := h.reports.ExportEmployeesPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
