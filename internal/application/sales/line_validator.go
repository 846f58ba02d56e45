package sales

import (
	"context"
	"fmt"

	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// LineInput producto y cantidad pedidos en una línea.
type LineInput struct {
	SKU      int64
	Quantity int
}

// LineValidator valida líneas de venta contra una foto de productos y stock de una sucursal.
// La foto debe tomarse dentro de la transacción que luego descuenta el stock (filas bloqueadas).
// Las cantidades ya aceptadas se acumulan por SKU, así dos líneas del mismo producto compiten por el mismo stock.
type LineValidator struct {
	products map[int64]*entity.Product
	stocks   map[int64]*entity.Stock
	reserved map[int64]int
}

// NewLineValidator construye el validador a partir de productos activos y filas de stock indexados por SKU.
func NewLineValidator(products map[int64]*entity.Product, stocks map[int64]*entity.Stock) *LineValidator {
	return &LineValidator{
		products: products,
		stocks:   stocks,
		reserved: make(map[int64]int),
	}
}

// LoadLineValidator lee los productos y bloquea las filas de stock de la sucursal para las líneas dadas.
func LoadLineValidator(
	ctx context.Context,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	storeID int,
	lines []LineInput,
) (*LineValidator, error) {
	skus := make([]int64, 0, len(lines))
	for _, l := range lines {
		skus = append(skus, l.SKU)
	}
	products, err := productRepo.GetManyBySKU(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	stocks, err := stockRepo.LockForSale(ctx, storeID, skus)
	if err != nil {
		return nil, fmt.Errorf("bloquear stock: %w", err)
	}
	return NewLineValidator(products, stocks), nil
}

// Validate revisa una línea (index 0-based) y corta en el primer fallo: cantidad, existencia,
// venta en la sucursal y stock disponible. Si es válida, reserva la cantidad.
func (v *LineValidator) Validate(index int, l LineInput) *domain.SaleError {
	fail := func(code domain.SaleErrorCode) *domain.SaleError {
		return &domain.SaleError{Code: code, Index: index, SKU: l.SKU, Requested: l.Quantity}
	}
	if l.Quantity <= 0 {
		return fail(domain.CodeInvalidQuantity)
	}
	if _, ok := v.products[l.SKU]; !ok {
		return fail(domain.CodeProductNotFound)
	}
	stock, ok := v.stocks[l.SKU]
	if !ok {
		return fail(domain.CodeProductNotAtStore)
	}
	available := stock.ForSale - v.reserved[l.SKU]
	if available < l.Quantity {
		e := fail(domain.CodeInsufficientStock)
		e.Available = available
		return e
	}
	v.reserved[l.SKU] += l.Quantity
	return nil
}

// ValidateAll valida todas las líneas; una línea inválida no impide revisar las siguientes.
func (v *LineValidator) ValidateAll(lines []LineInput) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for i, l := range lines {
		if e := v.Validate(i, l); e != nil {
			errs = append(errs, e)
		}
	}
	return errs
}

// Product producto validado (nil si no existe).
func (v *LineValidator) Product(sku int64) *entity.Product {
	return v.products[sku]
}

// Reserved cantidades aceptadas por SKU.
func (v *LineValidator) Reserved() map[int64]int {
	return v.reserved
}
