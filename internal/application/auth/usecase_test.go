package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/infrastructure/session"
)

type employeeRepoMock struct{ mock.Mock }

func (m *employeeRepoMock) GetCashier(ctx context.Context, rut string) (*entity.Cashier, error) {
	panic("not used in auth tests")
}

func (m *employeeRepoMock) GetCashierByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*entity.Cashier)
	return c, args.Error(1)
}

func (m *employeeRepoMock) GetManager(ctx context.Context, rut string) (*entity.Manager, error) {
	panic("not used in auth tests")
}

func (m *employeeRepoMock) GetManagerByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	args := m.Called(ctx, email)
	e, _ := args.Get(0).(*entity.Manager)
	return e, args.Error(1)
}

func (m *employeeRepoMock) ListCashiers(ctx context.Context, storeID int) ([]*entity.Cashier, error) {
	panic("not used in auth tests")
}

var testCfg = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newCashier(t *testing.T, fired bool) *entity.Cashier {
	return &entity.Cashier{
		Employee: entity.Employee{
			Rut: "12345678-5", Email: "caja@tienda.cl", PasswordHash: hash(t, "secreto"),
			Role: entity.RoleCashier, StoreID: 1,
		},
		Fired: fired,
	}
}

func TestLogin_CajeroYAutenticacion(t *testing.T) {
	ctx := context.Background()
	repo := &employeeRepoMock{}
	repo.On("GetCashierByEmail", ctx, "caja@tienda.cl").Return(newCashier(t, false), nil)
	store := session.NewMemoryStore()
	uc := NewAuthUseCase(repo, store, testCfg, nil)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: " Caja@Tienda.cl", Password: "secreto", Type: entity.RoleCashier})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionToken)

	sess, err := uc.Authenticate(ctx, resp.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", sess.Rut)
	assert.Equal(t, entity.RoleCashier, sess.Role)
	assert.Equal(t, 1, sess.StoreID)
}

func TestLogin_NuevaSesionRevocaLaAnterior(t *testing.T) {
	ctx := context.Background()
	repo := &employeeRepoMock{}
	repo.On("GetCashierByEmail", ctx, "caja@tienda.cl").Return(newCashier(t, false), nil)
	uc := NewAuthUseCase(repo, session.NewMemoryStore(), testCfg, nil)
	in := dto.LoginRequest{Email: "caja@tienda.cl", Password: "secreto", Type: entity.RoleCashier}

	first, err := uc.Login(ctx, in)
	require.NoError(t, err)
	second, err := uc.Login(ctx, in)
	require.NoError(t, err)

	_, err = uc.Authenticate(ctx, first.SessionToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Authenticate(ctx, second.SessionToken)
	assert.NoError(t, err)
}

func TestLogin_Errores(t *testing.T) {
	ctx := context.Background()
	repo := &employeeRepoMock{}
	repo.On("GetCashierByEmail", ctx, "caja@tienda.cl").Return(newCashier(t, false), nil)
	repo.On("GetCashierByEmail", ctx, "ex@tienda.cl").Return(newCashier(t, true), nil)
	repo.On("GetManagerByEmail", ctx, "nadie@tienda.cl").Return(nil, nil)
	uc := NewAuthUseCase(repo, session.NewMemoryStore(), testCfg, nil)

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "caja@tienda.cl", Password: "otra", Type: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ex@tienda.cl", Password: "secreto", Type: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.cl", Password: "x", Type: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "caja@tienda.cl", Password: "secreto", Type: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "", Password: "secreto", Type: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	repo := &employeeRepoMock{}
	repo.On("GetManagerByEmail", ctx, "jefe@tienda.cl").Return(&entity.Manager{Employee: entity.Employee{
		Rut: "11111111-1", Email: "jefe@tienda.cl", PasswordHash: hash(t, "clave"), Role: entity.RoleManager, StoreID: 2,
	}}, nil)
	uc := NewAuthUseCase(repo, session.NewMemoryStore(), testCfg, nil)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "jefe@tienda.cl", Password: "clave", Type: entity.RoleManager})
	require.NoError(t, err)
	sess, err := uc.Authenticate(ctx, resp.SessionToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, *sess))

	_, err = uc.Authenticate(ctx, resp.SessionToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc := NewAuthUseCase(&employeeRepoMock{}, session.NewMemoryStore(), testCfg, nil)
	_, err := uc.Authenticate(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
