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

func newCatalogUseCase(repo *catalogRepoMock) (*CatalogUseCase, *txRunnerMock) {
	tx := &txRunnerMock{catalog: repo}
	return NewCatalogUseCase(tx, nil), tx
}

func productRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            "  Polera básica ",
		Description:     "Algodón",
		Color:           ptr(0x00FF00),
		PriceWithoutTax: 10000,
		TypeID:          1,
		SizeID:          2,
		BrandID:         3,
		MinStock:        5,
		MaxStock:        50,
	}
}

func TestCreateProduct_ProductoYStockEnLaSucursal(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateProduct", ctx, &entity.Product{
		Name: "Polera básica", Description: "Algodón", Color: 0x00FF00, PreTaxPrice: 10000,
		TypeID: 1, SizeID: 2, BrandID: 3,
	}).Return(int64(1042), nil)
	repo.On("CreateStock", ctx, &entity.Stock{SKU: 1042, StoreID: 3, Min: 5, Max: 50}).Return(nil)
	uc, tx := newCatalogUseCase(repo)

	resp, err := uc.CreateProduct(ctx, 3, productRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1042), resp.SKU)
	assert.True(t, tx.committed)
	repo.AssertExpectations(t)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	cases := map[string]func(r *dto.CreateProductRequest){
		"sin nombre":             func(r *dto.CreateProductRequest) { r.Name = "  " },
		"sin descripción":        func(r *dto.CreateProductRequest) { r.Description = "" },
		"sin color":              func(r *dto.CreateProductRequest) { r.Color = nil },
		"color fuera de rango":   func(r *dto.CreateProductRequest) { r.Color = ptr(0x1000000) },
		"precio cero":            func(r *dto.CreateProductRequest) { r.PriceWithoutTax = 0 },
		"sin marca":              func(r *dto.CreateProductRequest) { r.BrandID = 0 },
		"mínimo cero":            func(r *dto.CreateProductRequest) { r.MinStock = 0 },
		"máximo igual al mínimo": func(r *dto.CreateProductRequest) { r.MaxStock = r.MinStock },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &catalogRepoMock{}
			uc, _ := newCatalogUseCase(repo)
			req := productRequest()
			mutate(&req)

			_, err := uc.CreateProduct(context.Background(), 3, req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProduct_ColorNegroEsValido(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateProduct", ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.Color == 0 })).
		Return(int64(7), nil)
	repo.On("CreateStock", ctx, mock.Anything).Return(nil)
	uc, _ := newCatalogUseCase(repo)
	req := productRequest()
	req.Color = ptr(0)

	resp, err := uc.CreateProduct(ctx, 3, req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.SKU)
}

func TestCreateProduct_FallaElStockNoConfirma(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateProduct", ctx, mock.Anything).Return(int64(1042), nil)
	repo.On("CreateStock", ctx, mock.Anything).Return(domain.ErrDuplicate)
	uc, tx := newCatalogUseCase(repo)

	_, err := uc.CreateProduct(ctx, 3, productRequest())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.False(t, tx.committed)
}

func TestCreateProduct_ReferenciaInexistente(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateProduct", ctx, mock.Anything).Return(nil, domain.ErrInvalidInput)
	uc, _ := newCatalogUseCase(repo)

	_, err := uc.CreateProduct(ctx, 3, productRequest())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateStock", mock.Anything, mock.Anything)
}

func TestCreateBrand(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateBrand", ctx, "Nike").Return(9, nil)
	uc, _ := newCatalogUseCase(repo)

	resp, err := uc.CreateBrand(ctx, dto.CreateNamedRequest{Name: " Nike "})

	require.NoError(t, err)
	assert.Equal(t, dto.NamedResponse{ID: 9, Name: "Nike"}, *resp)
}

func TestCreateBrand_VaciaODuplicada(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateBrand", ctx, "Nike").Return(0, domain.ErrDuplicate)
	uc, _ := newCatalogUseCase(repo)

	_, err := uc.CreateBrand(ctx, dto.CreateNamedRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateBrand(ctx, dto.CreateNamedRequest{Name: "Nike"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateSize(t *testing.T) {
	ctx := context.Background()
	repo := &catalogRepoMock{}
	repo.On("CreateSize", ctx, "XXL").Return(6, nil)
	uc, tx := newCatalogUseCase(repo)

	resp, err := uc.CreateSize(ctx, dto.CreateNamedRequest{Name: "XXL"})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.ID)
	assert.True(t, tx.committed)
	repo.AssertNotCalled(t, "CreateBrand", mock.Anything, mock.Anything)
}
