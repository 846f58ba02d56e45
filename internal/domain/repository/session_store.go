package repository

import (
	"context"
	"time"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// SessionStore registro de sesiones activas. Se abre al iniciar el proceso y se cierra al apagarlo.
type SessionStore interface {
	Save(ctx context.Context, s entity.Session, ttl time.Duration) error
	// Get devuelve (nil, nil) si la sesión no existe o expiró.
	Get(ctx context.Context, id string) (*entity.Session, error)
	Revoke(ctx context.Context, id string) error
	// RevokeEmployee revoca la sesión vigente del empleado, si la hay.
	RevokeEmployee(ctx context.Context, role, rut string) error
	Close() error
}
