package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/jwt"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicio y cierre de sesión de empleados.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	sessions     repository.SessionStore
	jwtCfg       JWTConfig
	log          *logger.Logger
	now          func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, sessions repository.SessionStore, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		employeeRepo: employeeRepo,
		sessions:     sessions,
		jwtCfg:       jwtCfg,
		log:          log.Named("auth"),
		now:          time.Now,
	}
}

// Login verifica email/password del cajero o gerente y abre una sesión nueva, revocando la anterior.
// Email desconocido => ErrNotFound, password incorrecta => ErrUnauthorized, cajero despedido => ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}

	var emp entity.Employee
	switch in.Type {
	case entity.RoleCashier:
		c, err := uc.employeeRepo.GetCashierByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		if err := checkPassword(c.PasswordHash, in.Password); err != nil {
			return nil, err
		}
		if !c.Active() {
			return nil, domain.ErrForbidden
		}
		emp = c.Employee
	case entity.RoleManager:
		m, err := uc.employeeRepo.GetManagerByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		if err := checkPassword(m.PasswordHash, in.Password); err != nil {
			return nil, err
		}
		emp = m.Employee
	default:
		return nil, fmt.Errorf("%w: tipo de empleado %q", domain.ErrInvalidInput, in.Type)
	}

	if err := uc.sessions.RevokeEmployee(ctx, in.Type, emp.Rut); err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	sess := entity.Session{
		ID:        uuid.NewString(),
		Rut:       emp.Rut,
		Role:      in.Type,
		StoreID:   emp.StoreID,
		ExpiresAt: uc.now().Add(ttl).UTC(),
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Session{
		ID:        sess.ID,
		Rut:       sess.Rut,
		Role:      sess.Role,
		StoreID:   sess.StoreID,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, sess, ttl); err != nil {
		return nil, err
	}

	uc.log.Info().Str("rut", sess.Rut).Str("role", sess.Role).Int("store_id", sess.StoreID).Msg("sesión iniciada")
	return &dto.LoginResponse{SessionToken: token}, nil
}

// Authenticate valida el token y que la sesión siga registrada. ErrUnauthorized si no.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Rut != claims.Rut || sess.Role != claims.Role {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// Logout revoca la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, s entity.Session) error {
	if err := uc.sessions.Revoke(ctx, s.ID); err != nil {
		return err
	}
	uc.log.Info().Str("rut", s.Rut).Str("role", s.Role).Msg("sesión cerrada")
	return nil
}

func checkPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
