package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wramirez/minimarket-crm/internal/application/auth"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
)

// AuthHandler maneja login, registro y flujos de contraseña.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ResetPassword POST /api/auth/reset
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	warning, err := h.uc.ResetPassword(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.WarningResponse{Message: "Contraseña temporal enviada al correo."}
	if warning != "" {
		resp.Message = "Contraseña restablecida."
		resp.Warnings = []string{warning}
	}
	return c.JSON(resp)
}

// RequestPasswordChange POST /api/auth/password-request (solo vendedor).
func (h *AuthHandler) RequestPasswordChange(c *fiber.Ctx) error {
	var in dto.PasswordChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	warning, err := h.uc.RequestPasswordChange(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.WarningResponse{Message: "Solicitud enviada a los administradores."}
	if warning != "" {
		resp.Message = "Solicitud registrada."
		resp.Warnings = []string{warning}
	}
	return c.JSON(resp)
}
