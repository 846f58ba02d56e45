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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// GetByRut obtiene un cliente por RUT. (nil, nil) si no existe.
func (r *ClientRepo) GetByRut(ctx context.Context, rut string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(ctx, `
		SELECT rut, first_name, last_name, email, phone, address
		FROM client WHERE rut = $1`, rut,
	).Scan(&c.Rut, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Create persiste un nuevo cliente. RUT, email o teléfono repetido => ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO client (rut, first_name, last_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.Rut, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}
