package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Search ejecuta el buscador del catálogo con los filtros dados.
func (r *ProductRepo) Search(ctx context.Context, f catalog.Filter, taxRate decimal.Decimal) ([]entity.ProductSummary, error) {
	query, args := compileFilter(f).sql(taxRate)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	list := make([]entity.ProductSummary, 0)
	for rows.Next() {
		var p entity.ProductSummary
		if err := rows.Scan(&p.SKU, &p.Name, &p.Brand, &p.Color, &p.Price, &p.Available); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetDetail ficha del producto por SKU (no eliminado). (nil, nil) si no existe.
func (r *ProductRepo) GetDetail(ctx context.Context, sku int64, taxRate decimal.Decimal) (*entity.ProductDetail, error) {
	query := `
		SELECT p.sku, p.name, p.description, b.name, t.name, s.name, p.color, ` + priceWithTax + `,
		       COALESCE((SELECT SUM(st.for_sale + st.in_storage) FROM stock AS st WHERE st.sku = p.sku), 0) > 0
		FROM product AS p
		INNER JOIN brand AS b ON b.id = p.brand_id
		INNER JOIN product_type AS t ON t.id = p.type_id
		INNER JOIN product_size AS s ON s.id = p.size_id
		WHERE p.sku = $2 AND p.deleted = FALSE`
	var d entity.ProductDetail
	err := r.q.QueryRow(ctx, query, taxRate, sku).Scan(
		&d.SKU, &d.Name, &d.Description, &d.Brand, &d.Type, &d.Size, &d.Color, &d.Price, &d.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &d, nil
}

// GetBySKU obtiene un producto activo por SKU. (nil, nil) si no existe o está eliminado.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku int64) (*entity.Product, error) {
	list, err := r.GetManyBySKU(ctx, []int64{sku})
	if err != nil {
		return nil, err
	}
	return list[sku], nil
}

// GetManyBySKU obtiene los productos activos de los SKUs dados.
func (r *ProductRepo) GetManyBySKU(ctx context.Context, skus []int64) (map[int64]*entity.Product, error) {
	query := `
		SELECT sku, name, description, color, pre_tax_price, deleted, type_id, size_id, brand_id
		FROM product WHERE sku = ANY($1) AND deleted = FALSE`
	rows, err := r.q.Query(ctx, query, skus)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]*entity.Product, len(skus))
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Name, &p.Description, &p.Color, &p.PreTaxPrice, &p.Deleted,
			&p.TypeID, &p.SizeID, &p.BrandID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out[p.SKU] = &p
	}
	return out, rows.Err()
}

// ListColors colores distintos de productos activos, ordenados.
func (r *ProductRepo) ListColors(ctx context.Context) ([]int, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT color FROM product WHERE deleted = FALSE ORDER BY color`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	colors, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("scan colors: %w", err)
	}
	return colors, nil
}

// ListByStore productos que se venden en la sucursal, con su fila de stock.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID int, taxRate decimal.Decimal) ([]entity.StoreProduct, error) {
	query := `
		SELECT p.sku, p.name, p.description, b.name, t.name, s.name, p.color, ` + priceWithTax + `,
		       st.for_sale + st.in_storage > 0,
		       st.min, st.max, st.for_sale, st.in_storage
		FROM product AS p
		INNER JOIN brand AS b ON b.id = p.brand_id
		INNER JOIN product_type AS t ON t.id = p.type_id
		INNER JOIN product_size AS s ON s.id = p.size_id
		INNER JOIN stock AS st ON st.sku = p.sku
		WHERE p.deleted = FALSE AND st.store_id = $2
		ORDER BY p.name, p.sku`
	rows, err := r.q.Query(ctx, query, taxRate, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store products: %w", err)
	}
	defer rows.Close()

	list := make([]entity.StoreProduct, 0)
	for rows.Next() {
		var p entity.StoreProduct
		if err := rows.Scan(&p.SKU, &p.Name, &p.Description, &p.Brand, &p.Type, &p.Size, &p.Color, &p.Price,
			&p.Available, &p.Min, &p.Max, &p.ForSale, &p.InStorage); err != nil {
			return nil, fmt.Errorf("scan store product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
