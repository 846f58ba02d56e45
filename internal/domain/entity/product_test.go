package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#000000", ColorHex(0))
	assert.Equal(t, "#ff0000", ColorHex(16711680))
	assert.Equal(t, "#0000ff", ColorHex(255))
	assert.Equal(t, "#00ff00", ColorHex(0x00FF00))
}

func TestStockValidate(t *testing.T) {
	assert.NoError(t, Stock{Min: 1, Max: 10, ForSale: 0, InStorage: 0}.Validate())
	assert.Error(t, Stock{Min: 10, Max: 10}.Validate())
	assert.Error(t, Stock{Min: 1, Max: 10, ForSale: -1}.Validate())
	assert.Error(t, Stock{Min: 1, Max: 10, InStorage: -1}.Validate())
	assert.Equal(t, 7, Stock{ForSale: 3, InStorage: 4}.Total())
}
