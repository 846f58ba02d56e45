package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, sku int64, storeID int) (*entity.Stock, error) {
	query := `
		SELECT sku, store_id, min, max, for_sale, in_storage
		FROM stock WHERE sku = $1 AND store_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, sku, storeID).Scan(&s.SKU, &s.StoreID, &s.Min, &s.Max, &s.ForSale, &s.InStorage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// LockForSale bloquea las filas de la sucursal para los SKUs dados. El ORDER BY fija un orden de
// bloqueo único entre ventas concurrentes y evita deadlocks.
func (r *StockRepo) LockForSale(ctx context.Context, storeID int, skus []int64) (map[int64]*entity.Stock, error) {
	ids := slices.Clone(skus)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	query := `
		SELECT sku, store_id, min, max, for_sale, in_storage
		FROM stock WHERE store_id = $1 AND sku = ANY($2)
		ORDER BY sku
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, storeID, ids)
	if err != nil {
		return nil, fmt.Errorf("lock stock: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]*entity.Stock, len(ids))
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.SKU, &s.StoreID, &s.Min, &s.Max, &s.ForSale, &s.InStorage); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out[s.SKU] = &s
	}
	return out, rows.Err()
}

// DecrementForSale resta qty del stock en venta solo si alcanza. Sin fila afectada => ErrInsufficientStock.
func (r *StockRepo) DecrementForSale(ctx context.Context, sku int64, storeID, qty int) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE stock SET for_sale = for_sale - $3
		WHERE sku = $1 AND store_id = $2 AND for_sale >= $3`, sku, storeID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Update reemplaza umbrales y cantidades de la fila. Las restricciones CHECK se traducen a ErrInvalidInput.
func (r *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE stock SET min = $3, max = $4, for_sale = $5, in_storage = $6
		WHERE sku = $1 AND store_id = $2`, s.SKU, s.StoreID, s.Min, s.Max, s.ForSale, s.InStorage)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct total (sala + bodega) del producto por sucursal.
func (r *StockRepo) ListByProduct(ctx context.Context, sku int64) ([]entity.StoreStock, error) {
	query := `
		SELECT su.id, su.name, st.for_sale + st.in_storage
		FROM stock AS st
		INNER JOIN store AS su ON su.id = st.store_id
		WHERE st.sku = $1
		ORDER BY su.id`
	rows, err := r.q.Query(ctx, query, sku)
	if err != nil {
		return nil, fmt.Errorf("list product stocks: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.StoreStock, error) {
		var s entity.StoreStock
		err := row.Scan(&s.StoreID, &s.StoreName, &s.Total)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan product stocks: %w", err)
	}
	return list, nil
}
