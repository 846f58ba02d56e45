package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/usecase"
)

// ReferenceHandler datos de referencia: marcas, tipos, tallas, regiones, sucursales y proveedores.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

func (h *ReferenceHandler) Brands(c *fiber.Ctx) error {
	out, err := h.uc.Brands(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) Types(c *fiber.Ctx) error {
	out, err := h.uc.Types(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) Sizes(c *fiber.Ctx) error {
	out, err := h.uc.Sizes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Regions regiones con sus comunas.
func (h *ReferenceHandler) Regions(c *fiber.Ctx) error {
	out, err := h.uc.Regions(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReferenceHandler) Stores(c *fiber.Ctx) error {
	out, err := h.uc.Stores(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suppliers GET /api/suppliers?brand=&commune=
func (h *ReferenceHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.Context(), parseSupplierFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Supplier GET /api/suppliers/:rut
func (h *ReferenceHandler) Supplier(c *fiber.Ctx) error {
	out, err := h.uc.Supplier(c.Context(), c.Params("rut"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
