package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/pricing"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// PDFUseCase genera el PDF (boleta o factura) de una venta.
type PDFUseCase struct {
	queries      *QueryUseCase
	clientRepo   repository.ClientRepository
	employeeRepo repository.EmployeeRepository
	refRepo      repository.ReferenceRepository
	generator    DocumentGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	queries *QueryUseCase,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
	refRepo repository.ReferenceRepository,
	generator DocumentGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		queries:      queries,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		refRepo:      refRepo,
		generator:    generator,
	}
}

// Download arma el documento de la venta y lo renderiza.
// Devuelve domain.ErrNotFound / domain.ErrForbidden igual que QueryUseCase.Get.
func (uc *PDFUseCase) Download(ctx context.Context, s entity.Session, saleID int64) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.queries.Get(ctx, s, saleID)
	if err != nil {
		return nil, "", err
	}

	store, err := uc.refRepo.GetStore(ctx, sale.StoreID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener sucursal: %w", err)
	}
	client, err := uc.clientRepo.GetByRut(ctx, sale.ClientRut)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	cashier, err := uc.employeeRepo.GetCashier(ctx, sale.CashierRut)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cajero: %w", err)
	}

	lines := make([]pricing.Line, len(sale.Lines))
	for i, l := range sale.Lines {
		lines[i] = pricing.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	net := pricing.Net(lines)

	doc := SaleDocument{
		Sale:    sale,
		Store:   store,
		Client:  client,
		Cashier: cashier,
		Net:     net,
		// El total guardado manda; el IVA es la diferencia para que el documento cuadre.
		Tax:     sale.Total - net,
		TaxRate: uc.queries.TaxRate().Mul(decimal.NewFromInt(100)).String() + "%",
	}
	pdfBytes, err = uc.generator.GenerateSalePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s_%d.pdf", sale.Type, sale.ID), nil
}
