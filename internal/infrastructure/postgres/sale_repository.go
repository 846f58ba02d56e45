package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera (fecha asignada por el servidor) y todas sus líneas.
// Debe ejecutarse dentro de la misma transacción que descuenta el stock.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (int64, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sale (cashier_rut, client_rut, store_id, type, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date`,
		sale.CashierRut, sale.ClientRut, sale.StoreID, sale.Type, sale.Total,
	).Scan(&sale.ID, &sale.Date)
	if err != nil {
		return 0, saleWriteError("insert sale", err)
	}

	lineNos := make([]int, len(sale.Lines))
	skus := make([]int64, len(sale.Lines))
	qtys := make([]int, len(sale.Lines))
	prices := make([]int, len(sale.Lines))
	for i, l := range sale.Lines {
		lineNos[i] = i + 1
		skus[i] = l.SKU
		qtys[i] = l.Quantity
		prices[i] = l.UnitPrice
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO sale_line (sale_id, line_no, sku, quantity, unit_price)
		SELECT $1, l.line_no, l.sku, l.quantity, l.unit_price
		FROM unnest($2::int[], $3::bigint[], $4::int[], $5::int[]) AS l(line_no, sku, quantity, unit_price)`,
		sale.ID, lineNos, skus, qtys, prices,
	)
	if err != nil {
		return 0, saleWriteError("insert sale lines", err)
	}
	if int(tag.RowsAffected()) != len(sale.Lines) {
		return 0, fmt.Errorf("insert sale lines: %d de %d filas", tag.RowsAffected(), len(sale.Lines))
	}
	return sale.ID, nil
}

// saleWriteError un cliente o cajero borrado entre la validación y el INSERT es ErrConflict;
// una cantidad o total que no cabe en la columna es ErrInvalidInput.
func saleWriteError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	case isOutOfRange(err):
		return fmt.Errorf("%s: %w: cantidad o total fuera de rango", op, domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}

const saleColumns = `s.id, s.date, s.cashier_rut, s.client_rut, s.store_id, s.type, s.total`

// GetByID obtiene una venta con sus líneas. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sale AS s WHERE s.id = $1`, id).Scan(
		&s.ID, &s.Date, &s.CashierRut, &s.ClientRut, &s.StoreID, &s.Type, &s.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	sales := []*entity.Sale{&s}
	if err := r.loadLines(ctx, sales); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByCashier ventas registradas por el cajero, de la más reciente a la más antigua.
func (r *SaleRepo) ListByCashier(ctx context.Context, cashierRut string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sale AS s WHERE s.cashier_rut = $1 ORDER BY s.date DESC, s.id DESC`, cashierRut)
}

// ListByStore ventas de la sucursal, de la más reciente a la más antigua.
func (r *SaleRepo) ListByStore(ctx context.Context, storeID int) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sale AS s WHERE s.store_id = $1 ORDER BY s.date DESC, s.id DESC`, storeID)
}

func (r *SaleRepo) list(ctx context.Context, query string, arg any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.CashierRut, &s.ClientRut, &s.StoreID, &s.Type, &s.Total); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// loadLines completa las líneas de las ventas dadas con una sola consulta.
func (r *SaleRepo) loadLines(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]int64, len(sales))
	byID := make(map[int64]*entity.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		byID[s.ID] = s
	}
	rows, err := r.q.Query(ctx, `
		SELECT sl.sale_id, sl.sku, p.name, sl.quantity, sl.unit_price
		FROM sale_line AS sl
		INNER JOIN product AS p ON p.sku = sl.sku
		WHERE sl.sale_id = ANY($1)
		ORDER BY sl.sale_id, sl.line_no`, ids)
	if err != nil {
		return fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			saleID int64
			l      entity.SaleLine
		)
		if err := rows.Scan(&saleID, &l.SKU, &l.Name, &l.Quantity, &l.UnitPrice); err != nil {
			return fmt.Errorf("scan sale line: %w", err)
		}
		if s := byID[saleID]; s != nil {
			s.Lines = append(s.Lines, l)
		}
	}
	return rows.Err()
}
