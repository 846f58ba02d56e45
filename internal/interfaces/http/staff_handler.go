package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/application/usecase"
)

// StaffHandler cajeros de la sucursal del gerente. El RUT va en ?rut=.
type StaffHandler struct {
	uc         *usecase.StaffUseCase
	employeeUC *usecase.EmployeeUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase, employeeUC *usecase.EmployeeUseCase) *StaffHandler {
	return &StaffHandler{uc: uc, employeeUC: employeeUC}
}

// Get godoc
// @Summary      Cajero vigente por RUT, o todos los cajeros de la sucursal sin ?rut
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        rut  query  string  false  "RUT del cajero"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	storeID := GetSession(c).StoreID
	r := c.Query("rut")
	if r == "" {
		out, err := h.employeeUC.ListCashiers(c.Context(), storeID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Get(c.Context(), storeID, r)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Hire godoc
// @Summary      Contratar cajero
// @Description  La contraseña generada se devuelve una sola vez.
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HireCashierRequest  true  "Datos del cajero"
// @Success      201   {object}  dto.HireCashierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *StaffHandler) Hire(c *fiber.Ctx) error {
	var in dto.HireCashierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Hire(c.Context(), GetSession(c).StoreID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Fire DELETE /api/employees?rut=: despide y cierra la sesión del cajero.
func (h *StaffHandler) Fire(c *fiber.Ctx) error {
	r := c.Query("rut")
	if r == "" {
		return badRequest(c, "VALIDATION", "rut es requerido")
	}
	if err := h.uc.Fire(c.Context(), GetSession(c).StoreID, r); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangeContract godoc
// @Summary      Cambiar jornada del cajero
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rut   query  string               true  "RUT del cajero"
// @Param        body  body   dto.ContractRequest  true  "fullTime"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees/contracts [patch]
func (h *StaffHandler) ChangeContract(c *fiber.Ctx) error {
	r := c.Query("rut")
	if r == "" {
		return badRequest(c, "VALIDATION", "rut es requerido")
	}
	var in dto.ContractRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.FullTime == nil {
		return badRequest(c, "VALIDATION", "fullTime es requerido")
	}
	out, err := h.uc.ChangeContract(c.Context(), GetSession(c).StoreID, r, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Salaries GET /api/employees/salaries?rut=: historial, el más reciente primero.
func (h *StaffHandler) Salaries(c *fiber.Ctx) error {
	r := c.Query("rut")
	if r == "" {
		return badRequest(c, "VALIDATION", "rut es requerido")
	}
	out, err := h.uc.Salaries(c.Context(), GetSession(c).StoreID, r)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddSalary POST /api/employees/salaries?rut=
func (h *StaffHandler) AddSalary(c *fiber.Ctx) error {
	r := c.Query("rut")
	if r == "" {
		return badRequest(c, "VALIDATION", "rut es requerido")
	}
	var in dto.SalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Amount <= 0 {
		return badRequest(c, "VALIDATION", "amount debe ser mayor que cero")
	}
	out, err := h.uc.AddSalary(c.Context(), GetSession(c).StoreID, r, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
