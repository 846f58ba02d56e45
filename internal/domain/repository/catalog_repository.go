package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// CatalogRepository altas del catálogo. Un producto nuevo y su fila de stock se crean en la misma transacción.
type CatalogRepository interface {
	// CreateBrand nombre repetido => ErrDuplicate.
	CreateBrand(ctx context.Context, name string) (int, error)
	// CreateSize nombre repetido => ErrDuplicate.
	CreateSize(ctx context.Context, name string) (int, error)
	// CreateProduct asigna p.SKU. Tipo, talla o marca inexistente => ErrInvalidInput.
	CreateProduct(ctx context.Context, p *entity.Product) error
	CreateStock(ctx context.Context, s *entity.Stock) error
}
