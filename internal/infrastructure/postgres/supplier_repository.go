package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierSelect = `
		SELECT s.rut, s.name, s.email, s.phone, s.address, s.address_number, s.commune_id,
		       COALESCE(array_agg(sb.brand_id ORDER BY sb.brand_id) FILTER (WHERE sb.brand_id IS NOT NULL), '{}')
		FROM supplier AS s
		LEFT JOIN supplier_brand AS sb ON sb.supplier_rut = s.rut`

// List proveedores filtrados por marcas abastecidas y/o comuna.
func (r *SupplierRepo) List(ctx context.Context, f catalog.SupplierFilter) ([]*entity.Supplier, error) {
	var where predicates
	where.add("TRUE")
	if len(f.Brands) > 0 {
		where.add("EXISTS (SELECT 1 FROM supplier_brand AS x WHERE x.supplier_rut = s.rut AND x.brand_id = ANY(?))", f.Brands)
	}
	if len(f.Communes) > 0 {
		where.add("s.commune_id = ANY(?)", f.Communes)
	}
	cond, args := where.render(1)

	rows, err := r.q.Query(ctx, supplierSelect+`
		WHERE `+cond+`
		GROUP BY s.rut
		ORDER BY s.name`, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByRut obtiene un proveedor. (nil, nil) si no existe.
func (r *SupplierRepo) GetByRut(ctx context.Context, rut string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, supplierSelect+`
		WHERE s.rut = $1
		GROUP BY s.rut`, rut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.Rut, &s.Name, &s.Email, &s.Phone, &s.Address, &s.AddressNumber, &s.CommuneID, &s.BrandIDs); err != nil {
		return nil, err
	}
	return &s, nil
}
