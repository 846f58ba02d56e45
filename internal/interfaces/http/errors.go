package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
)

// writeError traduce errores de dominio a status + cuerpo. Lo que no es de dominio es un 500
// opaco; el detalle solo va al log.
func writeError(c *fiber.Ctx, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs.First()
		body := dto.SaleErrorResponse{
			Code:    string(first.Code),
			Message: first.Error(),
			Errors:  make([]dto.SaleLineError, len(verrs)),
		}
		for i, e := range verrs {
			body.Errors[i] = saleLineError(e)
		}
		return c.Status(statusFor(first)).JSON(body)
	}

	var serr *domain.SaleError
	if errors.As(err, &serr) {
		return c.Status(statusFor(serr)).JSON(dto.SaleErrorResponse{Code: string(serr.Code), Message: serr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}

	requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func statusFor(e *domain.SaleError) int {
	switch {
	case errors.Is(e, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(e, domain.ErrInsufficientStock), errors.Is(e, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(e, domain.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func saleLineError(e *domain.SaleError) dto.SaleLineError {
	le := dto.SaleLineError{
		Line:      e.Index + 1,
		SKU:       e.SKU,
		Code:      string(e.Code),
		Message:   e.Error(),
		Requested: e.Requested,
	}
	if e.Code == domain.CodeInsufficientStock {
		available := e.Available
		le.Available = &available
	}
	return le
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
