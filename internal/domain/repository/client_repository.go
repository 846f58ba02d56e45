package repository

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia de clientes.
type ClientRepository interface {
	GetByRut(ctx context.Context, rut string) (*entity.Client, error)
	// Create devuelve domain.ErrDuplicate si ya existe el rut, email o teléfono.
	Create(ctx context.Context, c *entity.Client) error
}
