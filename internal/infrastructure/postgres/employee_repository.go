package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.StaffRepository    = (*EmployeeRepo)(nil)
)

// EmployeeRepo acceso a cajeros y gerentes (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const (
	cashierColumns = `rut, first_name, last_name, email, phone, password_hash, store_id, full_time, fired`
	managerColumns = `rut, first_name, last_name, email, phone, password_hash, store_id`
)

func scanCashier(row pgx.Row) (*entity.Cashier, error) {
	c := entity.Cashier{Employee: entity.Employee{Role: entity.RoleCashier}}
	err := row.Scan(&c.Rut, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.PasswordHash,
		&c.StoreID, &c.FullTime, &c.Fired)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanManager(row pgx.Row) (*entity.Manager, error) {
	m := entity.Manager{Employee: entity.Employee{Role: entity.RoleManager}}
	err := row.Scan(&m.Rut, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.PasswordHash, &m.StoreID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetCashier obtiene un cajero por RUT (incluye desvinculados).
func (r *EmployeeRepo) GetCashier(ctx context.Context, rut string) (*entity.Cashier, error) {
	c, err := scanCashier(r.q.QueryRow(ctx, `SELECT `+cashierColumns+` FROM cashier WHERE rut = $1`, rut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashier: %w", err)
	}
	return c, nil
}

// GetCashierByEmail obtiene un cajero por email (login).
func (r *EmployeeRepo) GetCashierByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	c, err := scanCashier(r.q.QueryRow(ctx, `SELECT `+cashierColumns+` FROM cashier WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashier by email: %w", err)
	}
	return c, nil
}

// GetManager obtiene un gerente por RUT.
func (r *EmployeeRepo) GetManager(ctx context.Context, rut string) (*entity.Manager, error) {
	m, err := scanManager(r.q.QueryRow(ctx, `SELECT `+managerColumns+` FROM manager WHERE rut = $1`, rut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return m, nil
}

// GetManagerByEmail obtiene un gerente por email (login).
func (r *EmployeeRepo) GetManagerByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	m, err := scanManager(r.q.QueryRow(ctx, `SELECT `+managerColumns+` FROM manager WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager by email: %w", err)
	}
	return m, nil
}

// ListCashiers cajeros de una sucursal ordenados por apellido.
func (r *EmployeeRepo) ListCashiers(ctx context.Context, storeID int) ([]*entity.Cashier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+cashierColumns+` FROM cashier WHERE store_id = $1 ORDER BY last_name, first_name`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list cashiers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Cashier, 0)
	for rows.Next() {
		c, err := scanCashier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cashier: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCashier inserta un cajero activo. RUT, email o teléfono repetido => ErrDuplicate.
func (r *EmployeeRepo) CreateCashier(ctx context.Context, c *entity.Cashier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO cashier (rut, first_name, last_name, email, phone, password_hash, store_id, full_time, fired)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)`,
		c.Rut, c.FirstName, c.LastName, c.Email, c.Phone, c.PasswordHash, c.StoreID, c.FullTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cashier: %w", err)
	}
	return nil
}

// FireCashier ErrNotFound si el RUT no existe.
func (r *EmployeeRepo) FireCashier(ctx context.Context, rut string) error {
	tag, err := r.q.Exec(ctx, `UPDATE cashier SET fired = TRUE WHERE rut = $1`, rut)
	if err != nil {
		return fmt.Errorf("fire cashier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateContract cambia la jornada (completa / parcial). ErrNotFound si el RUT no existe.
func (r *EmployeeRepo) UpdateContract(ctx context.Context, rut string, fullTime bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE cashier SET full_time = $2 WHERE rut = $1`, rut, fullTime)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddSalary registra un sueldo y asigna s.ID.
func (r *EmployeeRepo) AddSalary(ctx context.Context, s *entity.Salary) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO cashier_salary (cashier_rut, amount, valid_from)
		VALUES ($1, $2, $3)
		RETURNING id`,
		s.CashierRut, s.Amount, s.ValidFrom,
	).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

// ListSalaries historial del cajero, el más reciente primero.
func (r *EmployeeRepo) ListSalaries(ctx context.Context, rut string) ([]entity.Salary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, cashier_rut, amount, valid_from
		FROM cashier_salary
		WHERE cashier_rut = $1
		ORDER BY valid_from DESC, id DESC`, rut)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Salary, error) {
		var s entity.Salary
		err := row.Scan(&s.ID, &s.CashierRut, &s.Amount, &s.ValidFrom)
		return s, err
	})
}
