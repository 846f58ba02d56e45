package inventory

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con un repositorio de stock atado a ella.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}

// CatalogTxRunner ejecuta fn dentro de una transacción con el repositorio de altas del catálogo.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(catalogRepo repository.CatalogRepository) error) error
}
