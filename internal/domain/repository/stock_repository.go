package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// StockRepository puerto de stock por (producto, sucursal).
// Los métodos de bloqueo y escritura deben usarse dentro de una transacción.
type StockRepository interface {
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). (nil, nil) si el producto no se vende en la sucursal.
	GetForUpdate(ctx context.Context, sku int64, storeID int) (*entity.Stock, error)
	// LockForSale bloquea en orden de SKU las filas de la sucursal para los SKUs dados.
	LockForSale(ctx context.Context, storeID int, skus []int64) (map[int64]*entity.Stock, error)
	// DecrementForSale resta qty solo si el resultado no queda negativo; si no, ErrInsufficientStock.
	DecrementForSale(ctx context.Context, sku int64, storeID, qty int) error
	Update(ctx context.Context, s *entity.Stock) error
	ListByProduct(ctx context.Context, sku int64) ([]entity.StoreStock, error)
}
