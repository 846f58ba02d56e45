package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas. Las ventas solo se insertan y se leen.
type SaleRepository interface {
	// Create inserta cabecera y líneas; devuelve el id asignado y completa sale.Date.
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListByCashier(ctx context.Context, cashierRut string) ([]*entity.Sale, error)
	ListByStore(ctx context.Context, storeID int) ([]*entity.Sale, error)
}
