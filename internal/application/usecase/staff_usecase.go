package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
	"github.com/Pixoll/db-uni-project-api/pkg/rut"
)

// Contraseñas generadas: ASCII imprimible de '!' a '}'.
const (
	passwordLength = 32
	passwordFirst  = '!'
	passwordLast   = '}'
)

// StaffUseCase gestión de los cajeros de la sucursal del gerente: contratación, despido,
// jornada y sueldos. Un cajero de otra sucursal se trata como inexistente.
type StaffUseCase struct {
	repo       repository.EmployeeRepository
	staff      repository.StaffRepository
	sessions   repository.SessionStore
	log        *logger.Logger
	now        func() time.Time
	password   func() (string, error)
	bcryptCost int
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.EmployeeRepository, staff repository.StaffRepository, sessions repository.SessionStore, log *logger.Logger) *StaffUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StaffUseCase{
		repo:       repo,
		staff:      staff,
		sessions:   sessions,
		log:        log.Named("staff"),
		now:        time.Now,
		password:   generatePassword,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Get cajero vigente por RUT. domain.ErrNotFound si no existe, es de otra sucursal o fue despedido.
func (uc *StaffUseCase) Get(ctx context.Context, storeID int, r string) (*dto.EmployeeResponse, error) {
	c, err := uc.storeCashier(ctx, storeID, r)
	if err != nil {
		return nil, err
	}
	if c.Fired {
		return nil, fmt.Errorf("%w: el cajero fue despedido", domain.ErrNotFound)
	}
	resp := cashierToResponse(c)
	return &resp, nil
}

// Hire contrata un cajero en storeID con una contraseña generada que se devuelve una sola vez.
// domain.ErrDuplicate si el RUT, email o teléfono ya están registrados.
func (uc *StaffUseCase) Hire(ctx context.Context, storeID int, req dto.HireCashierRequest) (*dto.HireCashierResponse, error) {
	if req.FullTime == nil {
		return nil, fmt.Errorf("%w: fullTime es obligatorio", domain.ErrInvalidInput)
	}
	c := &entity.Cashier{
		Employee: entity.Employee{
			Rut:       strings.ToUpper(strings.TrimSpace(req.Rut)),
			FirstName: clean(req.FirstName),
			LastName:  clean(req.LastName),
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:     strings.TrimSpace(req.Phone),
			Role:      entity.RoleCashier,
			StoreID:   storeID,
		},
		FullTime: *req.FullTime,
	}
	if err := validateContact(c.Rut, c.FirstName, c.LastName, c.Email, c.Phone); err != nil {
		return nil, err
	}

	password, err := uc.password()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	c.PasswordHash = string(hash)

	if err := uc.staff.CreateCashier(ctx, c); err != nil {
		return nil, err
	}

	uc.log.Info().Str("rut", c.Rut).Int("store_id", storeID).Bool("full_time", c.FullTime).Msg("cajero contratado")
	return &dto.HireCashierResponse{Rut: c.Rut, GeneratedPassword: password}, nil
}

// Fire despide al cajero y revoca su sesión. domain.ErrConflict si ya estaba despedido.
func (uc *StaffUseCase) Fire(ctx context.Context, storeID int, r string) error {
	c, err := uc.storeCashier(ctx, storeID, r)
	if err != nil {
		return err
	}
	if c.Fired {
		// la sesión se revoca igual: cubre un reintento tras un fallo del registro de sesiones
		if err := uc.sessions.RevokeEmployee(ctx, entity.RoleCashier, c.Rut); err != nil {
			return err
		}
		return fmt.Errorf("%w: el cajero ya fue despedido", domain.ErrConflict)
	}

	if err := uc.staff.FireCashier(ctx, c.Rut); err != nil {
		return err
	}
	if err := uc.sessions.RevokeEmployee(ctx, entity.RoleCashier, c.Rut); err != nil {
		return err
	}

	uc.log.Info().Str("rut", c.Rut).Int("store_id", storeID).Msg("cajero despedido")
	return nil
}

// ChangeContract cambia la jornada del cajero. domain.ErrConflict si ya tiene esa jornada.
func (uc *StaffUseCase) ChangeContract(ctx context.Context, storeID int, r string, req dto.ContractRequest) (*dto.EmployeeResponse, error) {
	if req.FullTime == nil {
		return nil, fmt.Errorf("%w: fullTime es obligatorio", domain.ErrInvalidInput)
	}
	c, err := uc.activeCashier(ctx, storeID, r)
	if err != nil {
		return nil, err
	}
	if c.FullTime == *req.FullTime {
		kind := "parcial"
		if c.FullTime {
			kind = "completa"
		}
		return nil, fmt.Errorf("%w: el cajero ya tiene contrato de jornada %s", domain.ErrConflict, kind)
	}

	if err := uc.staff.UpdateContract(ctx, c.Rut, *req.FullTime); err != nil {
		return nil, err
	}
	c.FullTime = *req.FullTime

	uc.log.Info().Str("rut", c.Rut).Bool("full_time", c.FullTime).Msg("contrato actualizado")
	resp := cashierToResponse(c)
	return &resp, nil
}

// Salaries historial de sueldos del cajero, el más reciente primero. Incluye a los despedidos.
func (uc *StaffUseCase) Salaries(ctx context.Context, storeID int, r string) ([]dto.SalaryResponse, error) {
	c, err := uc.storeCashier(ctx, storeID, r)
	if err != nil {
		return nil, err
	}
	list, err := uc.staff.ListSalaries(ctx, c.Rut)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalaryResponse, len(list))
	for i, s := range list {
		out[i] = salaryToResponse(s)
	}
	return out, nil
}

// AddSalary registra un sueldo vigente desde ahora.
func (uc *StaffUseCase) AddSalary(ctx context.Context, storeID int, r string, req dto.SalaryRequest) (*dto.SalaryResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: el sueldo debe ser mayor que cero", domain.ErrInvalidInput)
	}
	c, err := uc.activeCashier(ctx, storeID, r)
	if err != nil {
		return nil, err
	}

	s := &entity.Salary{CashierRut: c.Rut, Amount: req.Amount, ValidFrom: uc.now().UTC()}
	if err := uc.staff.AddSalary(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Info().Str("rut", c.Rut).Int("amount", s.Amount).Msg("sueldo registrado")
	resp := salaryToResponse(*s)
	return &resp, nil
}

// storeCashier cajero de storeID, despedido o no.
func (uc *StaffUseCase) storeCashier(ctx context.Context, storeID int, r string) (*entity.Cashier, error) {
	r = strings.ToUpper(strings.TrimSpace(r))
	if err := rut.Validate(r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	c, err := uc.repo.GetCashier(ctx, r)
	if err != nil {
		return nil, err
	}
	if c == nil || c.StoreID != storeID {
		return nil, fmt.Errorf("%w: el cajero no existe en la sucursal", domain.ErrNotFound)
	}
	return c, nil
}

func (uc *StaffUseCase) activeCashier(ctx context.Context, storeID int, r string) (*entity.Cashier, error) {
	c, err := uc.storeCashier(ctx, storeID, r)
	if err != nil {
		return nil, err
	}
	if !c.Active() {
		return nil, fmt.Errorf("%w: el cajero fue despedido", domain.ErrNotFound)
	}
	return c, nil
}

func salaryToResponse(s entity.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{ID: s.ID, Amount: s.Amount, ValidFrom: s.ValidFrom}
}

func generatePassword() (string, error) {
	span := big.NewInt(passwordLast - passwordFirst + 1)
	b := make([]byte, passwordLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		b[i] = byte(passwordFirst + n.Int64())
	}
	return string(b), nil
}
