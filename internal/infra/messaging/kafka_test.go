//go:build unit

package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *recordingWriter) snapshot() ([]kafka.Message, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafka.Message(nil), w.msgs...), w.closed
}

type sampleEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
}

func TestKafkaPublisher_WritesAndFlushesOnStop(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w, 8, zap.NewNop())
	p.Start()

	p.Publish(context.Background(), "order-1", sampleEvent{Type: "order.created", OrderID: "order-1"})
	p.Publish(context.Background(), "order-2", sampleEvent{Type: "order.created", OrderID: "order-2"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	msgs, closed := w.snapshot()
	require.Len(t, msgs, 2)
	assert.True(t, closed)
	assert.Equal(t, "order-1", string(msgs[0].Key))
	assert.JSONEq(t, `{"type":"order.created","order_id":"order-1"}`, string(msgs[0].Value))
	assert.Equal(t, "content-type", msgs[0].Headers[0].Key)
}

func TestKafkaPublisher_DropsWhenBufferFull(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	w := &recordingWriter{}
	p := newPublisher(w, 1, zap.New(core))

	// not started, so the second event has nowhere to go
	p.Publish(context.Background(), "a", sampleEvent{Type: "x"})
	p.Publish(context.Background(), "b", sampleEvent{Type: "x"})

	assert.Equal(t, 1, logs.FilterMessage("publish buffer full, event dropped").Len())

	p.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	msgs, _ := w.snapshot()
	require.Len(t, msgs, 1)
	assert.Equal(t, "a", string(msgs[0].Key))
}

func TestKafkaPublisher_WriteErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := &recordingWriter{err: errors.New("broker unavailable")}
	p := newPublisher(w, 4, zap.New(core))
	p.Start()

	p.Publish(context.Background(), "order-1", sampleEvent{Type: "x"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	assert.Equal(t, 1, logs.FilterMessage("failed to publish event").Len())
}

func TestKafkaPublisher_PublishAfterStop(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w, 4, zap.NewNop())
	p.Start()
	require.NoError(t, p.Stop(context.Background()))
	require.NoError(t, p.Stop(context.Background()))

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), "late", sampleEvent{Type: "x"})
	})
}

func TestKafkaPublisher_UnencodableEvent(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := newPublisher(&recordingWriter{}, 4, zap.New(core))

	p.Publish(context.Background(), "bad", make(chan int))

	assert.Equal(t, 1, logs.FilterMessage("failed to encode event").Len())
	assert.Empty(t, p.inbox)
}
