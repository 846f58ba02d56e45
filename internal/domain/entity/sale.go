package entity

import "time"

// Tipos de documento de venta.
const (
	SaleTypeReceipt = "boleta"
	SaleTypeInvoice = "factura"
)

// ValidSaleType indica si t es boleta o factura.
func ValidSaleType(t string) bool {
	return t == SaleTypeReceipt || t == SaleTypeInvoice
}

// Sale cabecera de venta. Inmutable una vez registrada.
type Sale struct {
	ID         int64
	Date       time.Time
	CashierRut string
	ClientRut  string
	StoreID    int
	Type       string
	Total      int // con IVA, redondeado a pesos
	Lines      []SaleLine
}

// SaleLine producto y cantidad de una venta. UnitPrice es el precio sin IVA al momento de la venta.
type SaleLine struct {
	SKU       int64
	Name      string
	Quantity  int
	UnitPrice int
}
