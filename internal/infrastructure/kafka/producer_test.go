package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestProducer_CloseVaciaLaCola(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, 10, nil)
	p.Start()

	require.NoError(t, p.Publish([]byte("1"), []byte("a")))
	require.NoError(t, p.Publish([]byte("1"), []byte("b")))
	require.NoError(t, p.Close())

	assert.Len(t, w.msgs, 2)
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Publish(nil, []byte("c")), ErrClosed)
	assert.NoError(t, p.Close(), "cerrar dos veces no falla")
}

func TestProducer_BufferLleno(t *testing.T) {
	p := newProducer(&fakeWriter{}, 1, nil)
	// sin Start: nadie consume la cola.
	require.NoError(t, p.Publish(nil, []byte("a")))
	assert.ErrorIs(t, p.Publish(nil, []byte("b")), ErrBufferFull)
}

func TestProducer_ErrorDeEscrituraNoDetieneElLoop(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker caído")}
	p := newProducer(w, 10, nil)
	p.writeTimeout = time.Second
	p.Start()

	require.NoError(t, p.Publish(nil, []byte("a")))
	require.NoError(t, p.Close())
	assert.Empty(t, w.msgs)
	assert.True(t, w.closed)
}

func TestSaleEventPublisher(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, 10, nil)
	p.Start()
	pub := NewSaleEventPublisher(p)

	ev := sales.SaleRecorded{EventID: "e-1", SaleID: 7, StoreID: 3, Type: "boleta", Total: 9520,
		Lines: []sales.SaleEventLine{{SKU: 1001, Quantity: 2, UnitPrice: 4000}}}
	require.NoError(t, pub.PublishSaleRecorded(context.Background(), ev))
	require.NoError(t, p.Close())

	require.Len(t, w.msgs, 1)
	m := w.msgs[0]
	assert.Equal(t, "3", string(m.Key))
	assert.Equal(t, kafka.Header{Key: "event_type", Value: []byte(EventTypeSaleRecorded)}, m.Headers[0])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(m.Value, &decoded))
	assert.Equal(t, float64(7), decoded["sale_id"])
	assert.Equal(t, "e-1", decoded["event_id"])
	assert.Len(t, decoded["lines"], 1)
}
