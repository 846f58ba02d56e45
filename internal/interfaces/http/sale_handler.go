package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// SaleHandler registro y consulta de ventas.
type SaleHandler struct {
	record  *sales.RecordSaleUseCase
	queries *sales.QueryUseCase
	pdf     *sales.PDFUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(record *sales.RecordSaleUseCase, queries *sales.QueryUseCase, pdf *sales.PDFUseCase) *SaleHandler {
	return &SaleHandler{record: record, queries: queries, pdf: pdf}
}

// Create godoc
// @Summary      Registrar venta
// @Description  El cajero sale de la sesión. Si alguna línea falla no se escribe nada y se devuelven todas las fallas.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.SaleErrorResponse
// @Failure      404   {object}  dto.SaleErrorResponse
// @Failure      409   {object}  dto.SaleErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ClientRut == "" {
		return badRequest(c, "VALIDATION", "clientRut es requerido")
	}
	lines := make([]sales.LineInput, len(in.Products))
	for i, p := range in.Products {
		lines[i] = sales.LineInput{SKU: p.SKU, Quantity: p.Quantity}
	}
	sale, err := h.record.RecordSale(c.Context(), sales.SaleInput{
		CashierRut: GetSession(c).Rut,
		ClientRut:  in.ClientRut,
		Type:       in.Type,
		Lines:      lines,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{ID: sale.ID, Total: sale.Total})
}

// List GET /api/sales: propias (cajero) o de la sucursal (gerente), más recientes primero.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.queries.List(c.Context(), *GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.SaleResponse, len(list))
	for i, s := range list {
		out[i] = toSaleResponse(s)
	}
	return c.JSON(out)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "VALIDATION", "id debe ser numérico")
	}
	sale, err := h.queries.Get(c.Context(), *GetSession(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSaleResponse(sale))
}

// PDF GET /api/sales/:id/pdf
func (h *SaleHandler) PDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "VALIDATION", "id debe ser numérico")
	}
	b, filename, err := h.pdf.Download(c.Context(), *GetSession(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

// Tax GET /api/sales/tax
func (h *SaleHandler) Tax(c *fiber.Ctx) error {
	rate := h.queries.TaxRate()
	return c.JSON(dto.TaxResponse{
		Tax:     rate.InexactFloat64(),
		Percent: rate.Shift(2).InexactFloat64(),
	})
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = dto.SaleLineResponse{SKU: l.SKU, Name: l.Name, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return dto.SaleResponse{
		ID:         s.ID,
		Date:       s.Date,
		CashierRut: s.CashierRut,
		ClientRut:  s.ClientRut,
		StoreID:    s.StoreID,
		Type:       s.Type,
		Total:      s.Total,
		Products:   lines,
	}
}
