package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo. Los precios devueltos incluyen IVA (taxRate).
// Los métodos que devuelven un puntero devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Search(ctx context.Context, f catalog.Filter, taxRate decimal.Decimal) ([]entity.ProductSummary, error)
	GetDetail(ctx context.Context, sku int64, taxRate decimal.Decimal) (*entity.ProductDetail, error)
	// GetBySKU devuelve el producto solo si no está eliminado.
	GetBySKU(ctx context.Context, sku int64) (*entity.Product, error)
	// GetManyBySKU igual que GetBySKU para varios SKUs; los inexistentes no aparecen en el mapa.
	GetManyBySKU(ctx context.Context, skus []int64) (map[int64]*entity.Product, error)
	ListColors(ctx context.Context) ([]int, error)
	ListByStore(ctx context.Context, storeID int, taxRate decimal.Decimal) ([]entity.StoreProduct, error)
}
