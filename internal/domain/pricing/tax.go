// Package pricing aplica el IVA a precios y totales (servicio de dominio).
package pricing

import "github.com/shopspring/decimal"

// WithTax precio con IVA redondeado a pesos: round(preTax * (1 + rate)).
func WithTax(preTax int, rate decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(preTax)).Mul(decimal.NewFromInt(1).Add(rate)).Round(0).IntPart())
}

// Line cantidad y precio unitario sin IVA.
type Line struct {
	Quantity  int
	UnitPrice int
}

// SaleTotal total de una venta: round(sum(cantidad * precio) * (1 + rate)).
// El IVA se aplica una sola vez sobre la suma, no por línea.
func SaleTotal(lines []Line, rate decimal.Decimal) int {
	net := decimal.Zero
	for _, l := range lines {
		net = net.Add(decimal.NewFromInt(int64(l.Quantity)).Mul(decimal.NewFromInt(int64(l.UnitPrice))))
	}
	return int(net.Mul(decimal.NewFromInt(1).Add(rate)).Round(0).IntPart())
}

// Net suma sin IVA de las líneas.
func Net(lines []Line) int {
	var n int64
	for _, l := range lines {
		n += int64(l.Quantity) * int64(l.UnitPrice)
	}
	return int(n)
}
