package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SaleErrorResponse error de venta con el detalle de cada línea rechazada.
// Message repite el primer fallo.
type SaleErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Errors  []SaleLineError `json:"errors,omitempty"`
}

// SaleLineError fallo de una línea (Line es 1-based).
type SaleLineError struct {
	Line      int    `json:"line"`
	SKU       int64  `json:"sku"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Requested int    `json:"requested,omitempty"`
	Available *int   `json:"available,omitempty"`
}
