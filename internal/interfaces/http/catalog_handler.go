package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/application/inventory"
)

// CatalogHandler altas del catálogo (gerente).
type CatalogHandler struct {
	uc *inventory.CatalogUseCase
}

func NewCatalogHandler(uc *inventory.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateProduct godoc
// @Summary      Crear producto con su stock en la sucursal del gerente
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto y umbrales de stock"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateProduct(c.Context(), GetSession(c).StoreID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBrand POST /api/products/brands
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	in, ok := parseNamed(c)
	if !ok {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.CreateBrand(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateSize POST /api/products/sizes
func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	in, ok := parseNamed(c)
	if !ok {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.CreateSize(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func parseNamed(c *fiber.Ctx) (dto.CreateNamedRequest, bool) {
	var in dto.CreateNamedRequest
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	return in, strings.TrimSpace(in.Name) != ""
}
