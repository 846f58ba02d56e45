package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// ReferenceRepository datos de referencia (solo lectura).
type ReferenceRepository interface {
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	ListTypes(ctx context.Context) ([]entity.ProductType, error)
	ListSizes(ctx context.Context) ([]entity.ProductSize, error)
	ListRegions(ctx context.Context) ([]entity.Region, error)
	ListStores(ctx context.Context) ([]entity.Store, error)
	GetStore(ctx context.Context, id int) (*entity.Store, error)
}

// SupplierRepository puerto de proveedores.
type SupplierRepository interface {
	List(ctx context.Context, f catalog.SupplierFilter) ([]*entity.Supplier, error)
	GetByRut(ctx context.Context, rut string) (*entity.Supplier, error)
}
