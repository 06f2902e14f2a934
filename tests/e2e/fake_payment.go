//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/order"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"
)

// FakePaymentProvider stands in for Stripe. Intent ids are derived from the
// order id so webhooks can be crafted without reading the database.
type FakePaymentProvider struct {
	mu       sync.Mutex
	intents  map[string]commands.IntentRequest
	refunds  []int64
	failNext error
}

func NewFakePaymentProvider() *FakePaymentProvider {
	return &FakePaymentProvider{intents: map[string]commands.IntentRequest{}}
}

func IntentIDFor(req commands.IntentRequest) string {
	return "pi_e2e_" + req.OrderID.String()
}

func (f *FakePaymentProvider) CreateOrUpdateIntent(_ context.Context, req commands.IntentRequest) (commands.IntentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return commands.IntentResult{}, err
	}
	id := IntentIDFor(req)
	if req.ExistingIntentID != nil {
		id = *req.ExistingIntentID
	}
	f.intents[id] = req
	return commands.IntentResult{
		Provider:     "stripe",
		IntentID:     id,
		ClientSecret: id + "_secret",
		Status:       order.PaymentPending,
	}, nil
}

func (f *FakePaymentProvider) Refund(_ context.Context, intentID string, amountCents int64, _ string) (order.PaymentStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.takeFailure(); err != nil {
		return "", err
	}
	if _, ok := f.intents[intentID]; !ok {
		return "", fmt.Errorf("unknown intent %s", intentID)
	}
	f.refunds = append(f.refunds, amountCents)
	return order.PaymentRefunded, nil
}

func (f *FakePaymentProvider) Cancel(_ context.Context, _ string) (order.PaymentStatus, error) {
	return order.PaymentCancelled, nil
}

// FailNext makes the next provider call return err.
func (f *FakePaymentProvider) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = err
}

func (f *FakePaymentProvider) Intent(id string) (commands.IntentRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.intents[id]
	return req, ok
}

func (f *FakePaymentProvider) Refunds() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.refunds...)
}

func (f *FakePaymentProvider) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents = map[string]commands.IntentRequest{}
	f.refunds = nil
	f.failNext = nil
}

func (f *FakePaymentProvider) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}
