package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

func TestList_SegunRol(t *testing.T) {
	repo := new(saleRepoMock)
	uc := NewQueryUseCase(repo, decimal.RequireFromString("0.19"))
	own := []*entity.Sale{{ID: 1}}
	store := []*entity.Sale{{ID: 1}, {ID: 2}}
	repo.On("ListByCashier", mock.Anything, cashierRut).Return(own, nil)
	repo.On("ListByStore", mock.Anything, storeID).Return(store, nil)

	got, err := uc.List(context.Background(), entity.Session{Rut: cashierRut, Role: entity.RoleCashier, StoreID: storeID})
	require.NoError(t, err)
	assert.Equal(t, own, got)

	got, err = uc.List(context.Background(), entity.Session{Rut: "7654321-6", Role: entity.RoleManager, StoreID: storeID})
	require.NoError(t, err)
	assert.Equal(t, store, got)

	_, err = uc.List(context.Background(), entity.Session{Role: "client"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet(t *testing.T) {
	repo := new(saleRepoMock)
	uc := NewQueryUseCase(repo, decimal.Zero)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&entity.Sale{ID: 10, StoreID: storeID}, nil)
	repo.On("GetByID", mock.Anything, int64(11)).Return(nil, nil)

	s := entity.Session{Rut: cashierRut, Role: entity.RoleCashier, StoreID: storeID}

	sale, err := uc.Get(context.Background(), s, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sale.ID)

	_, err = uc.Get(context.Background(), s, 11)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	s.StoreID = 99
	_, err = uc.Get(context.Background(), s, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
