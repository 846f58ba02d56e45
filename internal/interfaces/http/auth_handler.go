package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/auth"
	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/application/usecase"
)

// AuthHandler sesiones y datos del empleado autenticado.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	employeeUC *usecase.EmployeeUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, employeeUC *usecase.EmployeeUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, employeeUC: employeeUC}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, type (cashier | manager)"
// @Success      201   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/sessions [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout DELETE /api/employees/sessions
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), *GetSession(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me GET /api/employees/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.employeeUC.Me(c.Context(), *GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cashiers GET /api/employees/cashiers: cajeros de la sucursal del gerente.
func (h *AuthHandler) Cashiers(c *fiber.Ctx) error {
	out, err := h.employeeUC.ListCashiers(c.Context(), GetSession(c).StoreID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
