package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var iva = decimal.RequireFromString("0.19")

func TestWithTax(t *testing.T) {
	assert.Equal(t, 1190, WithTax(1000, iva))
	assert.Equal(t, 0, WithTax(0, iva))
	// 1005 * 1.19 = 1195.95
	assert.Equal(t, 1196, WithTax(1005, iva))
	// 50 * 1.19 = 59.5 -> redondeo hacia arriba
	assert.Equal(t, 60, WithTax(50, iva))
	assert.Equal(t, 1000, WithTax(1000, decimal.Zero))
}

func TestSaleTotal_IVAUnaVezSobreLaSuma(t *testing.T) {
	lines := []Line{{Quantity: 1, UnitPrice: 5}, {Quantity: 1, UnitPrice: 5}}
	// por línea: round(5.95)+round(5.95) = 12; sobre la suma: round(11.9) = 12
	assert.Equal(t, 12, SaleTotal(lines, iva))

	lines = []Line{{Quantity: 3, UnitPrice: 1}}
	// round(3.57) = 4; por línea daría 3 * round(1.19) = 3
	assert.Equal(t, 4, SaleTotal(lines, iva))

	assert.Equal(t, 0, SaleTotal(nil, iva))
}

func TestNet(t *testing.T) {
	assert.Equal(t, 2500, Net([]Line{{Quantity: 2, UnitPrice: 1000}, {Quantity: 1, UnitPrice: 500}}))
	assert.Equal(t, 0, Net(nil))
}
