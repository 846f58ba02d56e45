package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// EmployeeRepository puerto de cajeros y gerentes. (nil, nil) si no existe.
type EmployeeRepository interface {
	GetCashier(ctx context.Context, rut string) (*entity.Cashier, error)
	GetCashierByEmail(ctx context.Context, email string) (*entity.Cashier, error)
	GetManager(ctx context.Context, rut string) (*entity.Manager, error)
	GetManagerByEmail(ctx context.Context, email string) (*entity.Manager, error)
	ListCashiers(ctx context.Context, storeID int) ([]*entity.Cashier, error)
}

// StaffRepository escrituras sobre cajeros: contratación, despido, contrato y sueldos.
type StaffRepository interface {
	// CreateCashier RUT, email o teléfono repetido => ErrDuplicate.
	CreateCashier(ctx context.Context, c *entity.Cashier) error
	// FireCashier marca al cajero como despedido; la fila se conserva porque sus ventas la referencian.
	FireCashier(ctx context.Context, rut string) error
	UpdateContract(ctx context.Context, rut string, fullTime bool) error
	// AddSalary asigna s.ID.
	AddSalary(ctx context.Context, s *entity.Salary) error
	// ListSalaries historial de sueldos del cajero, el más reciente primero.
	ListSalaries(ctx context.Context, rut string) ([]entity.Salary, error)
}
