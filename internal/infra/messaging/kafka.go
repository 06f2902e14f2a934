package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher buffers events in memory and writes them from a single
// goroutine. Publish never blocks: when the buffer is full the event is
// dropped and logged.
type KafkaPublisher struct {
	w      messageWriter
	inbox  chan kafka.Message
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return newPublisher(w, cfg.Buffer, logger)
}

func newPublisher(w messageWriter, buffer int, logger *zap.Logger) *KafkaPublisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &KafkaPublisher{
		w:      w,
		inbox:  make(chan kafka.Message, buffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: logger.Named("kafka"),
	}
}

func (p *KafkaPublisher) Start() {
	go p.loop()
}

func (p *KafkaPublisher) loop() {
	defer close(p.done)
	for {
		select {
		case <-p.stop:
			p.drain()
			if err := p.w.Close(); err != nil {
				p.logger.Warn("kafka writer close failed", zap.Error(err))
			}
			return
		case m := <-p.inbox:
			p.write(m)
		}
	}
}

func (p *KafkaPublisher) drain() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *KafkaPublisher) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("key", string(m.Key)),
			zap.Error(err),
		)
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, event any) {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode event", zap.String("key", key), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: "content-type", Value: []byte("application/json")}},
	}

	select {
	case <-p.stop:
		p.logger.Warn("publisher stopped, event dropped", zap.String("key", key))
		return
	default:
	}

	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("publish buffer full, event dropped", zap.String("key", key))
	}
}

// Stop flushes buffered events and closes the writer. It returns early if
// ctx expires first.
func (p *KafkaPublisher) Stop(ctx context.Context) error {
	p.once.Do(func() { close(p.stop) })
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoopPublisher is used when Kafka is disabled.
type NoopPublisher struct {
	logger *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.Named("events")}
}

func (p *NoopPublisher) Publish(_ context.Context, key string, _ any) {
	p.logger.Debug("event publishing disabled", zap.String("key", key))
}
