package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo. Solo lectura; los precios se entregan con IVA.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
	taxRate   decimal.Decimal
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository, taxRate decimal.Decimal) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, taxRate: taxRate}
}

// Search busca productos activos según el filtro (se normaliza antes de compilar).
func (uc *ProductUseCase) Search(ctx context.Context, f catalog.Filter) ([]dto.ProductSummaryResponse, error) {
	list, err := uc.repo.Search(ctx, f.Normalize(), uc.taxRate)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSummaryResponse, len(list))
	for i, p := range list {
		out[i] = dto.ProductSummaryResponse{
			SKU:       p.SKU,
			Name:      p.Name,
			Brand:     p.Brand,
			Color:     entity.ColorHex(p.Color),
			Price:     p.Price,
			Available: p.Available,
		}
	}
	return out, nil
}

// GetBySKU ficha del producto. domain.ErrNotFound si no existe o está eliminado.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku int64) (*dto.ProductDetailResponse, error) {
	d, err := uc.repo.GetDetail(ctx, sku, uc.taxRate)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductDetailResponse(*d)
	return &resp, nil
}

// Colors colores del catálogo en hexadecimal.
func (uc *ProductUseCase) Colors(ctx context.Context) ([]string, error) {
	colors, err := uc.repo.ListColors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = entity.ColorHex(c)
	}
	return out, nil
}

// Stocks stock total del producto en cada sucursal que lo vende.
func (uc *ProductUseCase) Stocks(ctx context.Context, sku int64) ([]dto.StoreStockResponse, error) {
	p, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.stockRepo.ListByProduct(ctx, sku)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreStockResponse, len(list))
	for i, s := range list {
		out[i] = dto.StoreStockResponse{StoreID: s.StoreID, StoreName: s.StoreName, Stock: s.Total}
	}
	return out, nil
}

// ListByStore productos de la sucursal del empleado con sus cantidades y umbrales.
func (uc *ProductUseCase) ListByStore(ctx context.Context, storeID int) ([]dto.StoreProductResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID, uc.taxRate)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreProductResponse, len(list))
	for i, p := range list {
		out[i] = dto.StoreProductResponse{
			ProductDetailResponse: toProductDetailResponse(p.ProductDetail),
			StockForSale:          p.ForSale,
			StockInStorage:        p.InStorage,
			MinStock:              p.Min,
			MaxStock:              p.Max,
		}
	}
	return out, nil
}

func toProductDetailResponse(d entity.ProductDetail) dto.ProductDetailResponse {
	return dto.ProductDetailResponse{
		SKU:         d.SKU,
		Name:        d.Name,
		Description: d.Description,
		Brand:       d.Brand,
		Type:        d.Type,
		Size:        d.Size,
		Color:       entity.ColorHex(d.Color),
		Price:       d.Price,
		Available:   d.Available,
	}
}
