package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/application/inventory"
	"github.com/Pixoll/db-uni-project-api/internal/application/usecase"
)

// ProductHandler catálogo y stock de productos.
type ProductHandler struct {
	uc            *usecase.ProductUseCase
	stockUC       *inventory.StockUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *inventory.StockUseCase, replenishment *inventory.ReplenishmentUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC, replenishment: replenishment}
}

// List godoc
// @Summary      Buscar productos
// @Description  Anónimo: buscador con filtros (o ficha si viene sku). Empleado: productos de su sucursal con stock.
// @Tags         products
// @Produce      json
// @Param        sku          query  int     false  "SKU"
// @Param        name         query  string  false  "Nombre (contiene)"
// @Param        type         query  []int   false  "Tipos"    collectionFormat(multi)
// @Param        size         query  []int   false  "Tallas"   collectionFormat(multi)
// @Param        brand        query  []int   false  "Marcas"   collectionFormat(multi)
// @Param        color        query  []int   false  "Colores"  collectionFormat(multi)
// @Param        region       query  []int   false  "Regiones" collectionFormat(multi)
// @Param        commune      query  []int   false  "Comunas"  collectionFormat(multi)
// @Param        minPrice     query  int     false  "Precio mínimo con IVA"
// @Param        maxPrice     query  int     false  "Precio máximo con IVA"
// @Param        sortByName   query  string  false  "asc | desc"
// @Param        sortByPrice  query  string  false  "asc | desc"
// @Success      200  {array}   dto.ProductSummaryResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		out, err := h.uc.ListByStore(c.Context(), sess.StoreID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	if raw := c.Query("sku"); raw != "" {
		sku, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "VALIDATION", "sku debe ser numérico")
		}
		return h.detail(c, sku)
	}
	out, err := h.uc.Search(c.Context(), parseFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Ficha de producto
// @Tags         products
// @Produce      json
// @Param        sku  path  int  true  "SKU"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	sku, err := strconv.ParseInt(c.Params("sku"), 10, 64)
	if err != nil {
		return badRequest(c, "VALIDATION", "sku debe ser numérico")
	}
	return h.detail(c, sku)
}

func (h *ProductHandler) detail(c *fiber.Ctx, sku int64) error {
	out, err := h.uc.GetBySKU(c.Context(), sku)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Colors GET /api/products/colors
func (h *ProductHandler) Colors(c *fiber.Ctx) error {
	out, err := h.uc.Colors(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stocks GET /api/products/stocks?sku=
func (h *ProductHandler) Stocks(c *fiber.Ctx) error {
	sku, err := strconv.ParseInt(c.Query("sku"), 10, 64)
	if err != nil {
		return badRequest(c, "VALIDATION", "sku es requerido y debe ser numérico")
	}
	out, err := h.uc.Stocks(c.Context(), sku)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Editar stock en la sucursal del gerente
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/stocks [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.SKU <= 0 {
		return badRequest(c, "VALIDATION", "sku es requerido")
	}
	out, err := h.stockUC.Update(c.Context(), GetSession(c).StoreID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TransferStock POST /api/products/stocks/transfer: bodega -> sala.
func (h *ProductHandler) TransferStock(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.SKU <= 0 {
		return badRequest(c, "VALIDATION", "sku es requerido")
	}
	out, err := h.stockUC.Transfer(c.Context(), GetSession(c).StoreID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replenishment GET /api/products/replenishment: productos bajo el mínimo en sala.
func (h *ProductHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishment.List(c.Context(), GetSession(c).StoreID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
