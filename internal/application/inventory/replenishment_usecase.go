package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición de una sucursal: productos cuya sala
// está bajo el mínimo, con la cantidad sugerida a mover desde bodega.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	taxRate     decimal.Decimal
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, taxRate decimal.Decimal) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, taxRate: taxRate}
}

// List productos con forSale < min. La sugerencia lleva la sala hasta el máximo sin exceder lo
// que hay en bodega; Missing es lo que faltaría comprar para llegar al máximo.
// Orden: mayor déficit relativo bajo el mínimo primero, luego SKU.
func (uc *ReplenishmentUseCase) List(ctx context.Context, storeID int) ([]dto.ReplenishmentSuggestionResponse, error) {
	products, err := uc.productRepo.ListByStore(ctx, storeID, uc.taxRate)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReplenishmentSuggestionResponse, 0)
	for _, p := range products {
		if p.ForSale >= p.Min {
			continue
		}
		want := p.Max - p.ForSale
		move := min(want, p.InStorage)
		out = append(out, dto.ReplenishmentSuggestionResponse{
			SKU:          p.SKU,
			Name:         p.Name,
			ForSale:      p.ForSale,
			InStorage:    p.InStorage,
			Min:          p.Min,
			Max:          p.Max,
			SuggestedQty: move,
			Missing:      want - move,
		})
	}

	// déficit relativo = (min - forSale) / min; se compara por producto cruzado para no dividir.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		da := (a.Min - a.ForSale) * b.Min
		db := (b.Min - b.ForSale) * a.Min
		if da != db {
			return da > db
		}
		return a.SKU < b.SKU
	})
	return out, nil
}
