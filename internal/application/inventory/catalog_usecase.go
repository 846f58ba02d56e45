package inventory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

const maxColor = 0xFFFFFF

// CatalogUseCase altas del catálogo hechas por el gerente.
type CatalogUseCase struct {
	txRunner CatalogTxRunner
	log      *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner CatalogTxRunner, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{txRunner: txRunner, log: log.Named("catalog")}
}

// CreateProduct crea el producto y su fila de stock (vacía) en storeID dentro de una transacción:
// si la fila de stock falla, el producto tampoco queda.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, storeID int, req dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	p, s, err := newProduct(storeID, req)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunCatalog(ctx, func(catalogRepo repository.CatalogRepository) error {
		if err := catalogRepo.CreateProduct(ctx, p); err != nil {
			return err
		}
		s.SKU = p.SKU
		return catalogRepo.CreateStock(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("sku", p.SKU).Int("store_id", storeID).Str("name", p.Name).Msg("producto creado")
	return &dto.CreateProductResponse{SKU: p.SKU}, nil
}

// CreateBrand domain.ErrDuplicate si ya existe una marca con ese nombre.
func (uc *CatalogUseCase) CreateBrand(ctx context.Context, req dto.CreateNamedRequest) (*dto.NamedResponse, error) {
	return uc.createNamed(ctx, "marca", req, func(r repository.CatalogRepository, name string) (int, error) {
		return r.CreateBrand(ctx, name)
	})
}

// CreateSize domain.ErrDuplicate si ya existe una talla con ese nombre.
func (uc *CatalogUseCase) CreateSize(ctx context.Context, req dto.CreateNamedRequest) (*dto.NamedResponse, error) {
	return uc.createNamed(ctx, "talla", req, func(r repository.CatalogRepository, name string) (int, error) {
		return r.CreateSize(ctx, name)
	})
}

func (uc *CatalogUseCase) createNamed(
	ctx context.Context,
	kind string,
	req dto.CreateNamedRequest,
	create func(r repository.CatalogRepository, name string) (int, error),
) (*dto.NamedResponse, error) {
	name := clean(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la %s es obligatorio", domain.ErrInvalidInput, kind)
	}

	var id int
	err := uc.txRunner.RunCatalog(ctx, func(catalogRepo repository.CatalogRepository) error {
		var err error
		id, err = create(catalogRepo, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int("id", id).Str("name", name).Msgf("%s creada", kind)
	return &dto.NamedResponse{ID: id, Name: name}, nil
}

func newProduct(storeID int, req dto.CreateProductRequest) (*entity.Product, *entity.Stock, error) {
	p := &entity.Product{
		Name:        clean(req.Name),
		Description: clean(req.Description),
		PreTaxPrice: req.PriceWithoutTax,
		TypeID:      req.TypeID,
		SizeID:      req.SizeID,
		BrandID:     req.BrandID,
	}
	switch {
	case p.Name == "":
		return nil, nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case p.Description == "":
		return nil, nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	case req.Color == nil || *req.Color < 0 || *req.Color > maxColor:
		return nil, nil, fmt.Errorf("%w: color debe estar entre 0x000000 y 0xffffff", domain.ErrInvalidInput)
	case p.PreTaxPrice <= 0:
		return nil, nil, fmt.Errorf("%w: el precio sin IVA debe ser mayor que cero", domain.ErrInvalidInput)
	case p.TypeID <= 0 || p.SizeID <= 0 || p.BrandID <= 0:
		return nil, nil, fmt.Errorf("%w: tipo, talla y marca son obligatorios", domain.ErrInvalidInput)
	case req.MinStock <= 0:
		return nil, nil, fmt.Errorf("%w: el stock mínimo debe ser mayor que cero", domain.ErrInvalidInput)
	}
	p.Color = *req.Color

	s := &entity.Stock{StoreID: storeID, Min: req.MinStock, Max: req.MaxStock}
	if err := s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return p, s, nil
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
