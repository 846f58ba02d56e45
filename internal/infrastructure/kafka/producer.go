// Package kafka publica eventos de dominio en Kafka.
package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

// ErrBufferFull la cola local está llena; el mensaje se descarta.
var ErrBufferFull = errors.New("kafka: buffer de publicación lleno")

// ErrClosed el productor ya fue cerrado.
var ErrClosed = errors.New("kafka: productor cerrado")

// messageWriter subconjunto de *kafka.Writer usado por el productor.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer encola mensajes y los escribe en segundo plano. Publish nunca bloquea al llamador.
type Producer struct {
	w            messageWriter
	log          *logger.Logger
	writeTimeout time.Duration

	mu      sync.RWMutex
	closed  bool
	inbox   chan kafka.Message
	closeCh chan struct{}
}

// NewProducer crea el productor para un tópico.
func NewProducer(brokers []string, topic string, buf int, log *logger.Logger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return newProducer(w, buf, log)
}

func newProducer(w messageWriter, buf int, log *logger.Logger) *Producer {
	if log == nil {
		log = logger.Nop()
	}
	return &Producer{
		w:            w,
		log:          log.Named("kafka"),
		writeTimeout: 5 * time.Second,
		inbox:        make(chan kafka.Message, buf),
		closeCh:      make(chan struct{}),
	}
}

// Start lanza el loop de escritura. Termina cuando se llama Close, después de vaciar la cola.
func (p *Producer) Start() {
	go func() {
		defer close(p.closeCh)
		for m := range p.inbox {
			p.write(m)
		}
		if err := p.w.Close(); err != nil {
			p.log.Warn().Err(err).Msg("error al cerrar writer")
		}
	}()
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.log.Error().Err(err).Str("key", string(m.Key)).Msg("no se pudo escribir mensaje")
	}
}

// Publish encola el mensaje. ErrBufferFull si la cola está llena, ErrClosed tras Close.
func (p *Producer) Publish(key, value []byte, headers ...kafka.Header) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now(), Headers: headers}:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close deja de aceptar mensajes y espera a que se escriban los pendientes.
func (p *Producer) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.inbox)
	p.mu.Unlock()
	<-p.closeCh
	return nil
}
