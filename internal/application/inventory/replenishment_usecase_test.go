package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

func storeProduct(sku int64, min, max, forSale, inStorage int) entity.StoreProduct {
	return entity.StoreProduct{
		ProductDetail: entity.ProductDetail{SKU: sku, Name: "p"},
		Min:           min, Max: max, ForSale: forSale, InStorage: inStorage,
	}
}

func TestReplenishment_List(t *testing.T) {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.19")
	products := &productRepoMock{}
	products.On("ListByStore", ctx, 1, rate).Return([]entity.StoreProduct{
		storeProduct(1, 2, 10, 5, 0),  // sobre el mínimo
		storeProduct(2, 10, 20, 5, 3), // déficit 50%, bodega no alcanza
		storeProduct(3, 4, 8, 0, 20),  // déficit 100%
		storeProduct(4, 2, 6, 1, 9),   // déficit 50%
	}, nil)
	uc := NewReplenishmentUseCase(products, rate)

	list, err := uc.List(ctx, 1)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].SKU)
	assert.Equal(t, 8, list[0].SuggestedQty)
	assert.Equal(t, 0, list[0].Missing)

	assert.Equal(t, int64(2), list[1].SKU, "empate de déficit: SKU menor primero")
	assert.Equal(t, 3, list[1].SuggestedQty)
	assert.Equal(t, 12, list[1].Missing)

	assert.Equal(t, int64(4), list[2].SKU)
	assert.Equal(t, 5, list[2].SuggestedQty)
}
