package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Search(ctx context.Context, f catalog.Filter, taxRate decimal.Decimal) ([]entity.ProductSummary, error) {
	args := m.Called(ctx, f, taxRate)
	p, _ := args.Get(0).([]entity.ProductSummary)
	return p, args.Error(1)
}

func (m *productRepoMock) GetDetail(ctx context.Context, sku int64, taxRate decimal.Decimal) (*entity.ProductDetail, error) {
	args := m.Called(ctx, sku, taxRate)
	p, _ := args.Get(0).(*entity.ProductDetail)
	return p, args.Error(1)
}

func (m *productRepoMock) GetBySKU(ctx context.Context, sku int64) (*entity.Product, error) {
	args := m.Called(ctx, sku)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) GetManyBySKU(ctx context.Context, skus []int64) (map[int64]*entity.Product, error) {
	panic("not used in catalog tests")
}

func (m *productRepoMock) ListColors(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]int)
	return c, args.Error(1)
}

func (m *productRepoMock) ListByStore(ctx context.Context, storeID int, taxRate decimal.Decimal) ([]entity.StoreProduct, error) {
	args := m.Called(ctx, storeID, taxRate)
	p, _ := args.Get(0).([]entity.StoreProduct)
	return p, args.Error(1)
}

type stockRepoMock struct{ mock.Mock }

func (m *stockRepoMock) GetForUpdate(ctx context.Context, sku int64, storeID int) (*entity.Stock, error) {
	panic("not used in catalog tests")
}

func (m *stockRepoMock) LockForSale(ctx context.Context, storeID int, skus []int64) (map[int64]*entity.Stock, error) {
	panic("not used in catalog tests")
}

func (m *stockRepoMock) DecrementForSale(ctx context.Context, sku int64, storeID, qty int) error {
	panic("not used in catalog tests")
}

func (m *stockRepoMock) Update(ctx context.Context, s *entity.Stock) error {
	panic("not used in catalog tests")
}

func (m *stockRepoMock) ListByProduct(ctx context.Context, sku int64) ([]entity.StoreStock, error) {
	args := m.Called(ctx, sku)
	s, _ := args.Get(0).([]entity.StoreStock)
	return s, args.Error(1)
}

type employeeRepoMock struct{ mock.Mock }

func (m *employeeRepoMock) GetCashier(ctx context.Context, rut string) (*entity.Cashier, error) {
	args := m.Called(ctx, rut)
	c, _ := args.Get(0).(*entity.Cashier)
	return c, args.Error(1)
}

func (m *employeeRepoMock) GetCashierByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	panic("not used in usecase tests")
}

func (m *employeeRepoMock) GetManager(ctx context.Context, rut string) (*entity.Manager, error) {
	args := m.Called(ctx, rut)
	e, _ := args.Get(0).(*entity.Manager)
	return e, args.Error(1)
}

func (m *employeeRepoMock) GetManagerByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	panic("not used in usecase tests")
}

func (m *employeeRepoMock) ListCashiers(ctx context.Context, storeID int) ([]*entity.Cashier, error) {
	args := m.Called(ctx, storeID)
	c, _ := args.Get(0).([]*entity.Cashier)
	return c, args.Error(1)
}

type clientRepoMock struct{ mock.Mock }

func (m *clientRepoMock) GetByRut(ctx context.Context, rut string) (*entity.Client, error) {
	args := m.Called(ctx, rut)
	c, _ := args.Get(0).(*entity.Client)
	return c, args.Error(1)
}

func (m *clientRepoMock) Create(ctx context.Context, c *entity.Client) error {
	return m.Called(ctx, c).Error(0)
}

type referenceRepoMock struct{ mock.Mock }

func (m *referenceRepoMock) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]entity.Brand)
	return b, args.Error(1)
}

func (m *referenceRepoMock) ListTypes(ctx context.Context) ([]entity.ProductType, error) {
	args := m.Called(ctx)
	t, _ := args.Get(0).([]entity.ProductType)
	return t, args.Error(1)
}

func (m *referenceRepoMock) ListSizes(ctx context.Context) ([]entity.ProductSize, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]entity.ProductSize)
	return s, args.Error(1)
}

func (m *referenceRepoMock) ListRegions(ctx context.Context) ([]entity.Region, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]entity.Region)
	return r, args.Error(1)
}

func (m *referenceRepoMock) ListStores(ctx context.Context) ([]entity.Store, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]entity.Store)
	return s, args.Error(1)
}

func (m *referenceRepoMock) GetStore(ctx context.Context, id int) (*entity.Store, error) {
	panic("not used in usecase tests")
}

type supplierRepoMock struct{ mock.Mock }

func (m *supplierRepoMock) List(ctx context.Context, f catalog.SupplierFilter) ([]*entity.Supplier, error) {
	args := m.Called(ctx, f)
	s, _ := args.Get(0).([]*entity.Supplier)
	return s, args.Error(1)
}

func (m *supplierRepoMock) GetByRut(ctx context.Context, rut string) (*entity.Supplier, error) {
	args := m.Called(ctx, rut)
	s, _ := args.Get(0).(*entity.Supplier)
	return s, args.Error(1)
}

type staffRepoMock struct{ mock.Mock }

func (m *staffRepoMock) CreateCashier(ctx context.Context, c *entity.Cashier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *staffRepoMock) FireCashier(ctx context.Context, rut string) error {
	return m.Called(ctx, rut).Error(0)
}

func (m *staffRepoMock) UpdateContract(ctx context.Context, rut string, fullTime bool) error {
	return m.Called(ctx, rut, fullTime).Error(0)
}

// AddSalary asigna el ID devuelto por el mock.
func (m *staffRepoMock) AddSalary(ctx context.Context, s *entity.Salary) error {
	args := m.Called(ctx, s)
	if id, ok := args.Get(0).(int64); ok {
		s.ID = id
	}
	return args.Error(1)
}

func (m *staffRepoMock) ListSalaries(ctx context.Context, rut string) ([]entity.Salary, error) {
	args := m.Called(ctx, rut)
	s, _ := args.Get(0).([]entity.Salary)
	return s, args.Error(1)
}

type sessionStoreMock struct{ mock.Mock }

func (m *sessionStoreMock) Save(ctx context.Context, s entity.Session, ttl time.Duration) error {
	panic("not used in usecase tests")
}

func (m *sessionStoreMock) Get(ctx context.Context, id string) (*entity.Session, error) {
	panic("not used in usecase tests")
}

func (m *sessionStoreMock) Revoke(ctx context.Context, id string) error {
	panic("not used in usecase tests")
}

func (m *sessionStoreMock) RevokeEmployee(ctx context.Context, role, rut string) error {
	return m.Called(ctx, role, rut).Error(0)
}

func (m *sessionStoreMock) Close() error {
	return nil
}
