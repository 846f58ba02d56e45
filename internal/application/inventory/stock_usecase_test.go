package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

func ptr(n int) *int { return &n }

func newStockUseCase(stock *stockRepoMock) (*StockUseCase, *txRunnerMock) {
	tx := &txRunnerMock{stock: stock}
	return NewStockUseCase(tx, nil), tx
}

func TestUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 1).
		Return(&entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10, ForSale: 5, InStorage: 3}, nil)
	stock.On("Update", ctx, &entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 20, ForSale: 5, InStorage: 8}).Return(nil)
	uc, tx := newStockUseCase(stock)

	resp, err := uc.Update(ctx, 1, dto.UpdateStockRequest{SKU: 1001, Max: ptr(20), InStorage: ptr(8)})

	require.NoError(t, err)
	assert.Equal(t, dto.StockResponse{SKU: 1001, StoreID: 1, Min: 2, Max: 20, ForSale: 5, InStorage: 8}, *resp)
	assert.True(t, tx.committed)
	stock.AssertExpectations(t)
}

func TestUpdate_MaximoNoMayorQueMinimo(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 1).
		Return(&entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10, ForSale: 5}, nil)
	uc, tx := newStockUseCase(stock)

	_, err := uc.Update(ctx, 1, dto.UpdateStockRequest{SKU: 1001, Min: ptr(10)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, tx.committed)
	stock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_CantidadNegativa(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 1).
		Return(&entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10}, nil)
	uc, _ := newStockUseCase(stock)

	_, err := uc.Update(ctx, 1, dto.UpdateStockRequest{SKU: 1001, ForSale: ptr(-1)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_SinCampos(t *testing.T) {
	uc, _ := newStockUseCase(&stockRepoMock{})
	_, err := uc.Update(context.Background(), 1, dto.UpdateStockRequest{SKU: 1001})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoNoSeVendeEnLaSucursal(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 2).Return(nil, nil)
	uc, _ := newStockUseCase(stock)

	_, err := uc.Update(ctx, 2, dto.UpdateStockRequest{SKU: 1001, Min: ptr(1)})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_MueveDeBodegaASala(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 1).
		Return(&entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10, ForSale: 1, InStorage: 6}, nil)
	stock.On("Update", ctx, &entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10, ForSale: 5, InStorage: 2}).Return(nil)
	uc, tx := newStockUseCase(stock)

	resp, err := uc.Transfer(ctx, 1, dto.TransferStockRequest{SKU: 1001, Quantity: 4})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.ForSale)
	assert.Equal(t, 2, resp.InStorage)
	assert.True(t, tx.committed)
}

func TestTransfer_BodegaInsuficiente(t *testing.T) {
	ctx := context.Background()
	stock := &stockRepoMock{}
	stock.On("GetForUpdate", ctx, int64(1001), 1).
		Return(&entity.Stock{SKU: 1001, StoreID: 1, Min: 2, Max: 10, ForSale: 1, InStorage: 3}, nil)
	uc, tx := newStockUseCase(stock)

	_, err := uc.Transfer(ctx, 1, dto.TransferStockRequest{SKU: 1001, Quantity: 4})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, tx.committed)
}

func TestTransfer_CantidadInvalida(t *testing.T) {
	uc, _ := newStockUseCase(&stockRepoMock{})
	_, err := uc.Transfer(context.Background(), 1, dto.TransferStockRequest{SKU: 1001, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
