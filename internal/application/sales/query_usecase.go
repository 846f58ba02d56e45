package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// QueryUseCase lecturas sobre ventas ya registradas.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
	taxRate  decimal.Decimal
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository, taxRate decimal.Decimal) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo, taxRate: taxRate}
}

// TaxRate tasa de IVA configurada.
func (uc *QueryUseCase) TaxRate() decimal.Decimal {
	return uc.taxRate
}

// List ventas visibles para el empleado: las propias si es cajero, las de su sucursal si es gerente.
func (uc *QueryUseCase) List(ctx context.Context, s entity.Session) ([]*entity.Sale, error) {
	switch s.Role {
	case entity.RoleCashier:
		return uc.saleRepo.ListByCashier(ctx, s.Rut)
	case entity.RoleManager:
		return uc.saleRepo.ListByStore(ctx, s.StoreID)
	default:
		return nil, domain.ErrForbidden
	}
}

// Get una venta con sus líneas. Solo se ven ventas de la sucursal del empleado.
func (uc *QueryUseCase) Get(ctx context.Context, s entity.Session, id int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.StoreID != s.StoreID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}
