package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo lectura de tablas de referencia (marcas, tipos, tallas, geografía, sucursales).
type ReferenceRepo struct {
	pool *pgxpool.Pool
}

// NewReferenceRepository construye el adaptador.
func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

// ListBrands marcas ordenadas por nombre.
func (r *ReferenceRepo) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM brand ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Brand, error) {
		var b entity.Brand
		err := row.Scan(&b.ID, &b.Name)
		return b, err
	})
}

// ListTypes tipos de producto ordenados por nombre.
func (r *ReferenceRepo) ListTypes(ctx context.Context) ([]entity.ProductType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM product_type ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ProductType, error) {
		var t entity.ProductType
		err := row.Scan(&t.ID, &t.Name, &t.Description)
		return t, err
	})
}

// ListSizes tallas ordenadas por id.
func (r *ReferenceRepo) ListSizes(ctx context.Context) ([]entity.ProductSize, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM product_size ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list product sizes: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ProductSize, error) {
		var s entity.ProductSize
		err := row.Scan(&s.ID, &s.Name)
		return s, err
	})
}

// ListRegions regiones con sus comunas, por número de región y nombre de comuna.
func (r *ReferenceRepo) ListRegions(ctx context.Context) ([]entity.Region, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.number, r.name, c.id, c.name
		FROM commune AS c
		INNER JOIN region AS r ON r.number = c.region_number
		ORDER BY r.number, c.name`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	regions := make([]entity.Region, 0)
	for rows.Next() {
		var (
			regionNumber int
			regionName   string
			c            entity.Commune
		)
		if err := rows.Scan(&regionNumber, &regionName, &c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		c.RegionNumber = regionNumber
		if n := len(regions); n == 0 || regions[n-1].Number != regionNumber {
			regions = append(regions, entity.Region{Number: regionNumber, Name: regionName})
		}
		last := &regions[len(regions)-1]
		last.Communes = append(last.Communes, c)
	}
	return regions, rows.Err()
}

// ListStores sucursales ordenadas por id.
func (r *ReferenceRepo) ListStores(ctx context.Context) ([]entity.Store, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, address_number, commune_id FROM store ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Store, error) {
		var s entity.Store
		err := row.Scan(&s.ID, &s.Name, &s.Address, &s.AddressNumber, &s.CommuneID)
		return s, err
	})
}

// GetStore obtiene una sucursal. (nil, nil) si no existe.
func (r *ReferenceRepo) GetStore(ctx context.Context, id int) (*entity.Store, error) {
	var s entity.Store
	err := r.pool.QueryRow(ctx, `SELECT id, name, address, address_number, commune_id FROM store WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Address, &s.AddressNumber, &s.CommuneID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}
