package sales

import (
	"context"
	"time"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error no queda nada escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// EventPublisher publica eventos de ventas ya confirmadas. Un error no afecta la venta.
type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, ev SaleRecorded) error
}

// SaleRecorded evento emitido tras el commit de una venta.
type SaleRecorded struct {
	EventID    string          `json:"event_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	SaleID     int64           `json:"sale_id"`
	StoreID    int             `json:"store_id"`
	CashierRut string          `json:"cashier_rut"`
	ClientRut  string          `json:"client_rut"`
	Type       string          `json:"type"`
	Total      int             `json:"total"`
	Lines      []SaleEventLine `json:"lines"`
}

// SaleEventLine línea del evento.
type SaleEventLine struct {
	SKU       int64 `json:"sku"`
	Quantity  int   `json:"quantity"`
	UnitPrice int   `json:"unit_price"`
}

// SaleDocument datos necesarios para renderizar la boleta o factura.
type SaleDocument struct {
	Sale    *entity.Sale
	Store   *entity.Store
	Client  *entity.Client
	Cashier *entity.Cashier
	Net     int
	Tax     int
	TaxRate string // p. ej. "19%"
}

// DocumentGenerator genera el PDF de una venta.
type DocumentGenerator interface {
	GenerateSalePDF(ctx context.Context, doc SaleDocument) ([]byte, error)
}
