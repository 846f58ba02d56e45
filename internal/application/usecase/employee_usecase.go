package usecase

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// EmployeeUseCase datos de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Me datos del empleado de la sesión.
func (uc *EmployeeUseCase) Me(ctx context.Context, s entity.Session) (*dto.EmployeeResponse, error) {
	switch s.Role {
	case entity.RoleCashier:
		c, err := uc.repo.GetCashier(ctx, s.Rut)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		resp := cashierToResponse(c)
		return &resp, nil
	case entity.RoleManager:
		m, err := uc.repo.GetManager(ctx, s.Rut)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		resp := employeeToResponse(m.Employee)
		return &resp, nil
	default:
		return nil, domain.ErrForbidden
	}
}

// ListCashiers cajeros de la sucursal del gerente, incluidos los despedidos.
func (uc *EmployeeUseCase) ListCashiers(ctx context.Context, storeID int) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListCashiers(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, len(list))
	for i, c := range list {
		out[i] = cashierToResponse(c)
	}
	return out, nil
}

func cashierToResponse(c *entity.Cashier) dto.EmployeeResponse {
	resp := employeeToResponse(c.Employee)
	fullTime, fired := c.FullTime, c.Fired
	resp.FullTime = &fullTime
	resp.Fired = &fired
	return resp
}

func employeeToResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		Rut:       e.Rut,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      e.Role,
		StoreID:   e.StoreID,
	}
}
