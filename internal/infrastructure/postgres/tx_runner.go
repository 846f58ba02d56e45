package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pixoll/db-uni-project-api/internal/application/inventory"
	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner, inventory.TxRunner and inventory.CatalogTxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ inventory.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit.
// Si fn devuelve error (o el proceso abandona el contexto) se hace Rollback y nada queda escrito.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewStockRepository(tx), NewProductRepository(tx), NewSaleRepository(tx))
	})
}

// RunStock transacción con solo el repositorio de stock (edición de umbrales y cantidades).
func (r *TxRunner) RunStock(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewStockRepository(tx))
	})
}

// RunCatalog transacción para altas del catálogo (producto + fila de stock).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(catalogRepo repository.CatalogRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewCatalogRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
