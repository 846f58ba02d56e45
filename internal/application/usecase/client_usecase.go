package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/rut"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\d{9}$`)
)

// ClientUseCase alta y consulta de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// GetByRut cliente por RUT. domain.ErrNotFound si no existe.
func (uc *ClientUseCase) GetByRut(ctx context.Context, r string) (*dto.ClientResponse, error) {
	if err := rut.Validate(r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	c, err := uc.repo.GetByRut(ctx, strings.ToUpper(r))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := clientToResponse(c)
	return &resp, nil
}

// Create registra un cliente. domain.ErrDuplicate si el RUT, email o teléfono ya existen.
func (uc *ClientUseCase) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := &entity.Client{
		Rut:       strings.ToUpper(strings.TrimSpace(req.Rut)),
		FirstName: clean(req.FirstName),
		LastName:  clean(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   clean(req.Address),
	}
	if err := validateClient(c); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func validateClient(c *entity.Client) error {
	if err := validateContact(c.Rut, c.FirstName, c.LastName, c.Email, c.Phone); err != nil {
		return err
	}
	if c.Address == "" {
		return fmt.Errorf("%w: dirección obligatoria", domain.ErrInvalidInput)
	}
	return nil
}

// validateContact datos comunes de clientes y empleados.
func validateContact(r, firstName, lastName, email, phone string) error {
	if err := rut.Validate(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if firstName == "" || lastName == "" {
		return fmt.Errorf("%w: nombre y apellido son obligatorios", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: el teléfono debe tener 9 dígitos", domain.ErrInvalidInput)
	}
	return nil
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func clientToResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		Rut:       c.Rut,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}
