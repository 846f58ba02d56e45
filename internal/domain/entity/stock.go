package entity

import "errors"

// Stock cantidades de un producto en una sucursal. La fila pertenece al par (producto, sucursal).
type Stock struct {
	SKU       int64
	StoreID   int
	Min       int
	Max       int
	ForSale   int // disponible en sala de ventas
	InStorage int // en bodega
}

// Total unidades entre sala y bodega.
func (s Stock) Total() int {
	return s.ForSale + s.InStorage
}

// Validate verifica max > min y cantidades no negativas.
func (s Stock) Validate() error {
	if s.Max <= s.Min {
		return errors.New("el máximo debe ser mayor que el mínimo")
	}
	if s.ForSale < 0 {
		return errors.New("el stock en venta no puede ser negativo")
	}
	if s.InStorage < 0 {
		return errors.New("el stock en bodega no puede ser negativo")
	}
	return nil
}

// StoreStock total de unidades de un producto en una sucursal.
type StoreStock struct {
	StoreID   int
	StoreName string
	Total     int
}
