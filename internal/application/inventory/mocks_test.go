package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

type txRunnerMock struct {
	stock     repository.StockRepository
	catalog   repository.CatalogRepository
	committed bool
}

func (m *txRunnerMock) RunStock(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	err := fn(m.stock)
	m.committed = err == nil
	return err
}

func (m *txRunnerMock) RunCatalog(ctx context.Context, fn func(catalogRepo repository.CatalogRepository) error) error {
	err := fn(m.catalog)
	m.committed = err == nil
	return err
}

type stockRepoMock struct{ mock.Mock }

func (m *stockRepoMock) GetForUpdate(ctx context.Context, sku int64, storeID int) (*entity.Stock, error) {
	args := m.Called(ctx, sku, storeID)
	s, _ := args.Get(0).(*entity.Stock)
	return s, args.Error(1)
}

func (m *stockRepoMock) LockForSale(ctx context.Context, storeID int, skus []int64) (map[int64]*entity.Stock, error) {
	panic("not used in inventory tests")
}

func (m *stockRepoMock) DecrementForSale(ctx context.Context, sku int64, storeID, qty int) error {
	panic("not used in inventory tests")
}

func (m *stockRepoMock) Update(ctx context.Context, s *entity.Stock) error {
	return m.Called(ctx, s).Error(0)
}

func (m *stockRepoMock) ListByProduct(ctx context.Context, sku int64) ([]entity.StoreStock, error) {
	panic("not used in inventory tests")
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Search(ctx context.Context, f catalog.Filter, taxRate decimal.Decimal) ([]entity.ProductSummary, error) {
	panic("not used in inventory tests")
}

func (m *productRepoMock) GetDetail(ctx context.Context, sku int64, taxRate decimal.Decimal) (*entity.ProductDetail, error) {
	panic("not used in inventory tests")
}

func (m *productRepoMock) GetBySKU(ctx context.Context, sku int64) (*entity.Product, error) {
	panic("not used in inventory tests")
}

func (m *productRepoMock) GetManyBySKU(ctx context.Context, skus []int64) (map[int64]*entity.Product, error) {
	panic("not used in inventory tests")
}

func (m *productRepoMock) ListColors(ctx context.Context) ([]int, error) {
	panic("not used in inventory tests")
}

func (m *productRepoMock) ListByStore(ctx context.Context, storeID int, taxRate decimal.Decimal) ([]entity.StoreProduct, error) {
	args := m.Called(ctx, storeID, taxRate)
	p, _ := args.Get(0).([]entity.StoreProduct)
	return p, args.Error(1)
}

type catalogRepoMock struct{ mock.Mock }

func (m *catalogRepoMock) CreateBrand(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *catalogRepoMock) CreateSize(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

// CreateProduct asigna el SKU devuelto por el mock, como hace la secuencia en la BD.
func (m *catalogRepoMock) CreateProduct(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	if sku, ok := args.Get(0).(int64); ok {
		p.SKU = sku
	}
	return args.Error(1)
}

func (m *catalogRepoMock) CreateStock(ctx context.Context, s *entity.Stock) error {
	return m.Called(ctx, s).Error(0)
}
