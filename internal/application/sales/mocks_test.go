package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// txRunnerMock ejecuta fn con repos fijos y registra si la tx habría hecho commit.
type txRunnerMock struct {
	stock     repository.StockRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	calls     int
	committed bool
}

func (m *txRunnerMock) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	m.calls++
	err := fn(m.stock, m.products, m.sales)
	m.committed = err == nil
	return err
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Search(ctx context.Context, f catalog.Filter, taxRate decimal.Decimal) ([]entity.ProductSummary, error) {
	panic("not used in sales tests")
}

func (m *productRepoMock) GetDetail(ctx context.Context, sku int64, taxRate decimal.Decimal) (*entity.ProductDetail, error) {
	panic("not used in sales tests")
}

func (m *productRepoMock) GetBySKU(ctx context.Context, sku int64) (*entity.Product, error) {
	panic("not used in sales tests")
}

func (m *productRepoMock) GetManyBySKU(ctx context.Context, skus []int64) (map[int64]*entity.Product, error) {
	args := m.Called(ctx, skus)
	p, _ := args.Get(0).(map[int64]*entity.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) ListColors(ctx context.Context) ([]int, error) {
	panic("not used in sales tests")
}

func (m *productRepoMock) ListByStore(ctx context.Context, storeID int, taxRate decimal.Decimal) ([]entity.StoreProduct, error) {
	panic("not used in sales tests")
}

type stockRepoMock struct{ mock.Mock }

func (m *stockRepoMock) GetForUpdate(ctx context.Context, sku int64, storeID int) (*entity.Stock, error) {
	panic("not used in sales tests")
}

func (m *stockRepoMock) LockForSale(ctx context.Context, storeID int, skus []int64) (map[int64]*entity.Stock, error) {
	args := m.Called(ctx, storeID, skus)
	s, _ := args.Get(0).(map[int64]*entity.Stock)
	return s, args.Error(1)
}

func (m *stockRepoMock) DecrementForSale(ctx context.Context, sku int64, storeID, qty int) error {
	return m.Called(ctx, sku, storeID, qty).Error(0)
}

func (m *stockRepoMock) Update(ctx context.Context, s *entity.Stock) error {
	panic("not used in sales tests")
}

func (m *stockRepoMock) ListByProduct(ctx context.Context, sku int64) ([]entity.StoreStock, error) {
	panic("not used in sales tests")
}

type saleRepoMock struct{ mock.Mock }

func (m *saleRepoMock) Create(ctx context.Context, sale *entity.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	id, _ := args.Get(0).(int64)
	if args.Error(1) == nil {
		sale.ID = id
	}
	return id, args.Error(1)
}

func (m *saleRepoMock) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Sale)
	return s, args.Error(1)
}

func (m *saleRepoMock) ListByCashier(ctx context.Context, cashierRut string) ([]*entity.Sale, error) {
	args := m.Called(ctx, cashierRut)
	s, _ := args.Get(0).([]*entity.Sale)
	return s, args.Error(1)
}

func (m *saleRepoMock) ListByStore(ctx context.Context, storeID int) ([]*entity.Sale, error) {
	args := m.Called(ctx, storeID)
	s, _ := args.Get(0).([]*entity.Sale)
	return s, args.Error(1)
}

type employeeRepoMock struct{ mock.Mock }

func (m *employeeRepoMock) GetCashier(ctx context.Context, rut string) (*entity.Cashier, error) {
	args := m.Called(ctx, rut)
	c, _ := args.Get(0).(*entity.Cashier)
	return c, args.Error(1)
}

func (m *employeeRepoMock) GetCashierByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	panic("not used in sales tests")
}

func (m *employeeRepoMock) GetManager(ctx context.Context, rut string) (*entity.Manager, error) {
	panic("not used in sales tests")
}

func (m *employeeRepoMock) GetManagerByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	panic("not used in sales tests")
}

func (m *employeeRepoMock) ListCashiers(ctx context.Context, storeID int) ([]*entity.Cashier, error) {
	panic("not used in sales tests")
}

type clientRepoMock struct{ mock.Mock }

func (m *clientRepoMock) GetByRut(ctx context.Context, rut string) (*entity.Client, error) {
	args := m.Called(ctx, rut)
	c, _ := args.Get(0).(*entity.Client)
	return c, args.Error(1)
}

func (m *clientRepoMock) Create(ctx context.Context, c *entity.Client) error {
	panic("not used in sales tests")
}

type publisherMock struct{ mock.Mock }

func (m *publisherMock) PublishSaleRecorded(ctx context.Context, ev SaleRecorded) error {
	return m.Called(ctx, ev).Error(0)
}
