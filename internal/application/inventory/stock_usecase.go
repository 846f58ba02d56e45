package inventory

import (
	"context"
	"fmt"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

// StockUseCase edición del stock de la sucursal del gerente. Cada operación bloquea la fila
// (SELECT FOR UPDATE) para no pisar una venta en curso.
type StockUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{txRunner: txRunner, log: log.Named("inventory")}
}

// Update aplica los campos presentes en req sobre la fila (sku, storeID).
// domain.ErrNotFound si el producto no se vende en la sucursal; ErrInvalidInput si el resultado
// no cumple max > min o deja cantidades negativas.
func (uc *StockUseCase) Update(ctx context.Context, storeID int, req dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if req.Min == nil && req.Max == nil && req.ForSale == nil && req.InStorage == nil {
		return nil, fmt.Errorf("%w: no hay campos para actualizar", domain.ErrInvalidInput)
	}

	var out entity.Stock
	err := uc.txRunner.RunStock(ctx, func(stockRepo repository.StockRepository) error {
		s, err := stockRepo.GetForUpdate(ctx, req.SKU, storeID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if req.Min != nil {
			s.Min = *req.Min
		}
		if req.Max != nil {
			s.Max = *req.Max
		}
		if req.ForSale != nil {
			s.ForSale = *req.ForSale
		}
		if req.InStorage != nil {
			s.InStorage = *req.InStorage
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if err := stockRepo.Update(ctx, s); err != nil {
			return err
		}
		out = *s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("sku", out.SKU).Int("store_id", out.StoreID).
		Int("for_sale", out.ForSale).Int("in_storage", out.InStorage).Msg("stock actualizado")
	resp := toStockResponse(out)
	return &resp, nil
}

// Transfer mueve qty unidades de bodega a sala de ventas. ErrInsufficientStock si la bodega no alcanza.
func (uc *StockUseCase) Transfer(ctx context.Context, storeID int, req dto.TransferStockRequest) (*dto.StockResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var out entity.Stock
	err := uc.txRunner.RunStock(ctx, func(stockRepo repository.StockRepository) error {
		s, err := stockRepo.GetForUpdate(ctx, req.SKU, storeID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if s.InStorage < req.Quantity {
			return fmt.Errorf("%w: hay %d unidades en bodega", domain.ErrInsufficientStock, s.InStorage)
		}
		s.InStorage -= req.Quantity
		s.ForSale += req.Quantity
		if err := stockRepo.Update(ctx, s); err != nil {
			return err
		}
		out = *s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("sku", out.SKU).Int("store_id", out.StoreID).Int("quantity", req.Quantity).
		Msg("stock trasladado a sala")
	resp := toStockResponse(out)
	return &resp, nil
}

func toStockResponse(s entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		SKU:       s.SKU,
		StoreID:   s.StoreID,
		Min:       s.Min,
		Max:       s.Max,
		ForSale:   s.ForSale,
		InStorage: s.InStorage,
	}
}
