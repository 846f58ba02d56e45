package dto

import "time"

// CreateSaleRequest body de POST /sales. El cajero sale de la sesión.
type CreateSaleRequest struct {
	ClientRut string            `json:"clientRut"`
	Type      string            `json:"type"` // boleta | factura
	Products  []SaleLineRequest `json:"products"`
}

// SaleLineRequest producto y cantidad.
type SaleLineRequest struct {
	SKU      int64 `json:"sku"`
	Quantity int   `json:"quantity"`
}

// CreateSaleResponse venta creada.
type CreateSaleResponse struct {
	ID    int64 `json:"id"`
	Total int   `json:"total"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID         int64              `json:"id"`
	Date       time.Time          `json:"date"`
	CashierRut string             `json:"cashierRut"`
	ClientRut  string             `json:"clientRut"`
	StoreID    int                `json:"storeId"`
	Type       string             `json:"type"`
	Total      int                `json:"total"`
	Products   []SaleLineResponse `json:"products"`
}

// SaleLineResponse línea de una venta (precio unitario sin IVA).
type SaleLineResponse struct {
	SKU       int64  `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
}

// TaxResponse tasa de IVA vigente.
type TaxResponse struct {
	Tax     float64 `json:"tax"`
	Percent float64 `json:"percent"`
}
