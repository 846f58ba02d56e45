package postgres

import (
	"context"
	"fmt"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo altas de marcas, tallas y productos (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) CreateBrand(ctx context.Context, name string) (int, error) {
	return r.insertNamed(ctx, "brand", name)
}

func (r *CatalogRepo) CreateSize(ctx context.Context, name string) (int, error) {
	return r.insertNamed(ctx, "product_size", name)
}

// insertNamed table es siempre una constante del paquete.
func (r *CatalogRepo) insertNamed(ctx context.Context, table, name string) (int, error) {
	var id int
	err := r.q.QueryRow(ctx, `INSERT INTO `+table+` (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// CreateProduct inserta el producto con SKU de product_sku_seq y lo deja en p.SKU.
func (r *CatalogRepo) CreateProduct(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO product (name, description, color, pre_tax_price, type_id, size_id, brand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sku`,
		p.Name, p.Description, p.Color, p.PreTaxPrice, p.TypeID, p.SizeID, p.BrandID,
	).Scan(&p.SKU)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: tipo, talla o marca inexistente", domain.ErrInvalidInput)
		case isCheckViolation(err), isOutOfRange(err):
			return fmt.Errorf("%w: color o precio fuera de rango", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateStock fila de stock inicial; max > min lo exige también la tabla.
func (r *CatalogRepo) CreateStock(ctx context.Context, s *entity.Stock) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (sku, store_id, min, max, for_sale, in_storage)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.SKU, s.StoreID, s.Min, s.Max, s.ForSale, s.InStorage,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isCheckViolation(err), isOutOfRange(err):
			return fmt.Errorf("%w: umbrales de stock inválidos", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}
