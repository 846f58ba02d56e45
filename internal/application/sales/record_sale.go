package sales

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/pricing"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

// SaleInput venta propuesta. CashierRut sale de la sesión, nunca del body.
type SaleInput struct {
	CashierRut string
	ClientRut  string
	Type       string
	Lines      []LineInput
}

// RecordSaleUseCase registra una venta: cabecera, líneas y descuento de stock en una sola transacción.
type RecordSaleUseCase struct {
	txRunner     TxRunner
	employeeRepo repository.EmployeeRepository
	clientRepo   repository.ClientRepository
	publisher    EventPublisher
	taxRate      decimal.Decimal
	log          *logger.Logger
	now          func() time.Time
}

// NewRecordSaleUseCase construye el caso de uso. publisher puede ser nil.
func NewRecordSaleUseCase(
	txRunner TxRunner,
	employeeRepo repository.EmployeeRepository,
	clientRepo repository.ClientRepository,
	publisher EventPublisher,
	taxRate decimal.Decimal,
	log *logger.Logger,
) *RecordSaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordSaleUseCase{
		txRunner:     txRunner,
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
		publisher:    publisher,
		taxRate:      taxRate,
		log:          log.Named("sales"),
		now:          time.Now,
	}
}

// RecordSale valida y registra la venta. Devuelve la venta con su id, fecha y total.
//
// Errores:
//   - *domain.SaleError        precondición de cabecera (tipo, líneas vacías, cajero, cliente).
//   - domain.ValidationErrors  una o más líneas inválidas; no se escribe nada.
//   - otro                     falla de almacenamiento; la transacción se revierte.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if !entity.ValidSaleType(in.Type) {
		return nil, &domain.SaleError{Code: domain.CodeInvalidSaleType, Index: domain.NoLine, Field: in.Type}
	}
	if len(in.Lines) == 0 {
		return nil, &domain.SaleError{Code: domain.CodeEmptyLineSet, Index: domain.NoLine}
	}

	cashier, err := uc.employeeRepo.GetCashier(ctx, in.CashierRut)
	if err != nil {
		return nil, fmt.Errorf("obtener cajero: %w", err)
	}
	if cashier == nil {
		return nil, &domain.SaleError{Code: domain.CodeCashierNotFound, Index: domain.NoLine, Field: in.CashierRut}
	}
	if !cashier.Active() {
		return nil, &domain.SaleError{Code: domain.CodeCashierInactive, Index: domain.NoLine, Field: in.CashierRut}
	}

	client, err := uc.clientRepo.GetByRut(ctx, in.ClientRut)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, &domain.SaleError{Code: domain.CodeClientNotFound, Index: domain.NoLine, Field: in.ClientRut}
	}

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Foto de productos y stock con las filas bloqueadas hasta el commit.
		validator, err := LoadLineValidator(ctx, productRepo, stockRepo, cashier.StoreID, in.Lines)
		if err != nil {
			return err
		}
		// 2) Todas las líneas se validan; cualquier fallo revierte la transacción completa.
		if errs := validator.ValidateAll(in.Lines); len(errs) > 0 {
			return errs
		}

		// 3) Total con IVA aplicado una vez sobre la suma.
		lines := make([]entity.SaleLine, len(in.Lines))
		priced := make([]pricing.Line, len(in.Lines))
		for i, l := range in.Lines {
			p := validator.Product(l.SKU)
			lines[i] = entity.SaleLine{SKU: l.SKU, Name: p.Name, Quantity: l.Quantity, UnitPrice: p.PreTaxPrice}
			priced[i] = pricing.Line{Quantity: l.Quantity, UnitPrice: p.PreTaxPrice}
		}
		sale = &entity.Sale{
			CashierRut: cashier.Rut,
			ClientRut:  client.Rut,
			StoreID:    cashier.StoreID,
			Type:       in.Type,
			Total:      pricing.SaleTotal(priced, uc.taxRate),
			Lines:      lines,
		}

		// 4) Cabecera + líneas.
		if _, err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		// 5) Descuento condicional por SKU (en orden, igual que el bloqueo).
		reserved := validator.Reserved()
		skus := make([]int64, 0, len(reserved))
		for sku := range reserved {
			skus = append(skus, sku)
		}
		slices.Sort(skus)
		for _, sku := range skus {
			if err := stockRepo.DecrementForSale(ctx, sku, cashier.StoreID, reserved[sku]); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return uc.concurrentStockError(in.Lines, sku)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			uc.log.Info().Str("cashier", in.CashierRut).Int("failed_lines", len(verrs)).Msg("venta rechazada")
		}
		return nil, err
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int("store_id", sale.StoreID).
		Str("type", sale.Type).
		Int("total", sale.Total).
		Msg("venta registrada")

	uc.publish(ctx, sale)
	return sale, nil
}

// concurrentStockError el UPDATE condicional no encontró stock suficiente pese al bloqueo.
// Se reporta sobre la última línea del SKU.
func (uc *RecordSaleUseCase) concurrentStockError(lines []LineInput, sku int64) error {
	idx := 0
	for i, l := range lines {
		if l.SKU == sku {
			idx = i
		}
	}
	return domain.ValidationErrors{{
		Code:      domain.CodeInsufficientStock,
		Index:     idx,
		SKU:       sku,
		Requested: lines[idx].Quantity,
	}}
}

// publish emite sale.recorded sin afectar el resultado de la venta.
func (uc *RecordSaleUseCase) publish(ctx context.Context, sale *entity.Sale) {
	if uc.publisher == nil {
		return
	}
	ev := SaleRecorded{
		EventID:    uuid.NewString(),
		OccurredAt: uc.now().UTC(),
		SaleID:     sale.ID,
		StoreID:    sale.StoreID,
		CashierRut: sale.CashierRut,
		ClientRut:  sale.ClientRut,
		Type:       sale.Type,
		Total:      sale.Total,
		Lines:      make([]SaleEventLine, len(sale.Lines)),
	}
	for i, l := range sale.Lines {
		ev.Lines[i] = SaleEventLine{SKU: l.SKU, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	if err := uc.publisher.PublishSaleRecorded(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Int64("sale_id", sale.ID).Msg("no se pudo publicar sale.recorded")
	}
}
