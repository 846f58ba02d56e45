package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
)

// EventTypeSaleRecorded valor del header event_type.
const EventTypeSaleRecorded = "sale.recorded"

// publisher cola de mensajes; *Producer en producción.
type publisher interface {
	Publish(key, value []byte, headers ...kafka.Header) error
}

// SaleEventPublisher publica sale.recorded con clave = id de sucursal, así los eventos de una
// sucursal conservan su orden en la partición.
type SaleEventPublisher struct {
	p publisher
}

var _ sales.EventPublisher = (*SaleEventPublisher)(nil)

// NewSaleEventPublisher construye el publicador sobre el productor.
func NewSaleEventPublisher(p *Producer) *SaleEventPublisher {
	return &SaleEventPublisher{p: p}
}

func (s *SaleEventPublisher) PublishSaleRecorded(_ context.Context, ev sales.SaleRecorded) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode sale.recorded: %w", err)
	}
	key := []byte(strconv.Itoa(ev.StoreID))
	return s.p.Publish(key, b,
		kafka.Header{Key: "event_type", Value: []byte(EventTypeSaleRecorded)},
		kafka.Header{Key: "event_id", Value: []byte(ev.EventID)},
	)
}

// NopPublisher descarta los eventos (sin brokers configurados).
type NopPublisher struct{}

var _ sales.EventPublisher = NopPublisher{}

func (NopPublisher) PublishSaleRecorded(context.Context, sales.SaleRecorded) error { return nil }
