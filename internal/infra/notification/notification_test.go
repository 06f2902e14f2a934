//go:build unit

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type capturingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *capturingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSMTPSender_Send(t *testing.T) {
	d := &capturingDialer{}
	s := newSMTPSender("shop@example.com", d, zap.NewNop())

	err := s.Send(context.Background(), "buyer@example.com", "Hello", "body text")

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"shop@example.com"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"buyer@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, d.sent[0].GetHeader("Subject"))
}

func TestSMTPSender_Failures(t *testing.T) {
	t.Run("dial error", func(t *testing.T) {
		s := newSMTPSender("shop@example.com", &capturingDialer{err: errors.New("connection refused")}, zap.NewNop())
		assert.ErrorContains(t, s.Send(context.Background(), "buyer@example.com", "s", "b"), "connection refused")
	})

	t.Run("empty recipient", func(t *testing.T) {
		d := &capturingDialer{}
		s := newSMTPSender("shop@example.com", d, zap.NewNop())
		assert.Error(t, s.Send(context.Background(), "", "s", "b"))
		assert.Empty(t, d.sent)
	})

	t.Run("cancelled context", func(t *testing.T) {
		d := &capturingDialer{}
		s := newSMTPSender("shop@example.com", d, zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, s.Send(ctx, "buyer@example.com", "s", "b"), context.Canceled)
		assert.Empty(t, d.sent)
	})
}

func TestRender(t *testing.T) {
	payload, err := json.Marshal(shared.NotificationPayload{
		OrderID:     uuid.New(),
		OrderNumber: "ORD-42",
		Email:       "buyer@example.com",
		TotalCents:  13850,
		Currency:    "try",
	})
	require.NoError(t, err)

	got, err := Render(shared.NotificationJob{Kind: shared.NotificationKindReceipt, Payload: payload})

	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", got.To)
	assert.Equal(t, "Payment received for order ORD-42", got.Subject)
	assert.Contains(t, got.Body, "Amount paid: 138.50 TRY")

	created, err := Render(shared.NotificationJob{Kind: shared.NotificationKindOrderCreated, Payload: payload})
	require.NoError(t, err)
	assert.Equal(t, "Order ORD-42 received", created.Subject)
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(shared.NotificationJob{Kind: "sms", Payload: []byte(`{}`)})
	assert.True(t, errs.Is(err, ErrUnknownKind))

	_, err = Render(shared.NotificationJob{Kind: shared.NotificationKindReceipt, Payload: []byte(`{broken`)})
	assert.Error(t, err)
}
