package entity

import "fmt"

// Product producto del catálogo. El SKU es estable y nunca se reutiliza.
// No se borra físicamente: Deleted lo retira del catálogo sin romper el historial de ventas.
type Product struct {
	SKU         int64
	Name        string
	Description string
	Color       int // RGB 24 bits empaquetado
	PreTaxPrice int // precio sin IVA, en pesos
	Deleted     bool
	TypeID      int
	SizeID      int
	BrandID     int
}

// ProductSummary fila del buscador de catálogo.
type ProductSummary struct {
	SKU       int64
	Name      string
	Brand     string
	Color     int
	Price     int // precio con IVA
	Available bool
}

// ProductDetail ficha de un producto con sus referencias resueltas.
type ProductDetail struct {
	SKU         int64
	Name        string
	Description string
	Brand       string
	Type        string
	Size        string
	Color       int
	Price       int // precio con IVA
	Available   bool
}

// StoreProduct producto de una sucursal junto con su fila de stock (vista de empleados).
type StoreProduct struct {
	ProductDetail
	Min       int
	Max       int
	ForSale   int
	InStorage int
}

// ColorHex convierte un color empaquetado a "#rrggbb" (siempre 6 dígitos).
func ColorHex(color int) string {
	return fmt.Sprintf("#%06x", color&0xFFFFFF)
}
