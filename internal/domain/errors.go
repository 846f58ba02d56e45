package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// SaleErrorCode clasifica los fallos al registrar una venta.
type SaleErrorCode string

const (
	CodeInvalidQuantity   SaleErrorCode = "INVALID_QUANTITY"
	CodeProductNotFound   SaleErrorCode = "PRODUCT_NOT_FOUND"
	CodeProductNotAtStore SaleErrorCode = "PRODUCT_NOT_AT_STORE"
	CodeInsufficientStock SaleErrorCode = "INSUFFICIENT_STOCK"
	CodeCashierNotFound   SaleErrorCode = "CASHIER_NOT_FOUND"
	CodeCashierInactive   SaleErrorCode = "CASHIER_INACTIVE"
	CodeClientNotFound    SaleErrorCode = "CLIENT_NOT_FOUND"
	CodeInvalidSaleType   SaleErrorCode = "INVALID_SALE_TYPE"
	CodeEmptyLineSet      SaleErrorCode = "EMPTY_LINE_SET"
)

// NoLine indica que el error no corresponde a una línea concreta.
const NoLine = -1

// SaleError error estructurado de venta. Index es 0-based (NoLine si aplica a la cabecera).
type SaleError struct {
	Code      SaleErrorCode
	Index     int
	SKU       int64
	Field     string
	Requested int
	Available int
}

// Error mensaje legible; las líneas se numeran desde 1.
func (e *SaleError) Error() string {
	switch e.Code {
	case CodeInvalidQuantity:
		return fmt.Sprintf("línea %d: cantidad inválida %d para el producto %d", e.Index+1, e.Requested, e.SKU)
	case CodeProductNotFound:
		return fmt.Sprintf("línea %d: el producto %d no existe", e.Index+1, e.SKU)
	case CodeProductNotAtStore:
		return fmt.Sprintf("línea %d: el producto %d no se vende en esta sucursal", e.Index+1, e.SKU)
	case CodeInsufficientStock:
		return fmt.Sprintf("línea %d: se solicitaron %d del producto %d, solo hay %d disponibles", e.Index+1, e.Requested, e.SKU, e.Available)
	case CodeCashierNotFound:
		return "el cajero no existe"
	case CodeCashierInactive:
		return "el cajero está desvinculado"
	case CodeClientNotFound:
		return fmt.Sprintf("el cliente %s no existe", e.Field)
	case CodeInvalidSaleType:
		return fmt.Sprintf("tipo de venta inválido %q, debe ser boleta o factura", e.Field)
	case CodeEmptyLineSet:
		return "la venta debe tener al menos un producto"
	default:
		return string(e.Code)
	}
}

// Unwrap mapea el código a un sentinel para errors.Is en el borde HTTP.
func (e *SaleError) Unwrap() error {
	switch e.Code {
	case CodeProductNotFound, CodeCashierNotFound, CodeClientNotFound:
		return ErrNotFound
	case CodeInsufficientStock:
		return ErrInsufficientStock
	case CodeProductNotAtStore:
		return ErrConflict
	case CodeCashierInactive:
		return ErrForbidden
	default:
		return ErrInvalidInput
	}
}

// ValidationErrors agrupa los fallos de todas las líneas de una venta.
type ValidationErrors []*SaleError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap expone cada fallo para errors.Is / errors.As.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// First devuelve el primer fallo (o nil si no hay).
func (v ValidationErrors) First() *SaleError {
	if len(v) == 0 {
		return nil
	}
	return v[0]
}
