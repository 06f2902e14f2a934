package reservation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type Line struct {
	SKU      SKU
	Quantity int
}

// Shortage describes the first SKU that could not be covered.
type Shortage struct {
	SKU       SKU
	Requested int
	Available int
}

func (s Shortage) Error() string {
	return fmt.Sprintf("%s: product %s requested %d available %d",
		ErrInsufficientStock, s.SKU.ProductID, s.Requested, s.Available)
}

func (s Shortage) Unwrap() error { return ErrInsufficientStock }

type Factory struct {
	Clock clock.Clock
	TTL   time.Duration
}

func NewFactory(clock clock.Clock, ttl time.Duration) *Factory {
	return &Factory{Clock: clock, TTL: ttl}
}

// Demand sums requested quantities per SKU and returns the keys in lock
// order.
func Demand(lines []Line) (map[SKUKey]int, []SKUKey) {
	demand := make(map[SKUKey]int, len(lines))
	for _, l := range lines {
		demand[l.SKU.Key()] += l.Quantity
	}
	keys := make([]SKUKey, 0, len(demand))
	for k := range demand {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return demand, keys
}

// CheckAvailability compares summed demand against one availability
// snapshot per SKU. Lines sharing a SKU are not re-checked individually.
func CheckAvailability(demand map[SKUKey]int, order []SKUKey, available map[SKUKey]int) error {
	for _, k := range order {
		if demand[k] > available[k] {
			return Shortage{SKU: k.SKU(), Requested: demand[k], Available: available[k]}
		}
	}
	return nil
}

// Reserve creates one reservation per line, all sharing the same expiry.
func (f *Factory) Reserve(userID uuid.UUID, idempotencyKey string, lines []Line) ([]*StockReservation, error) {
	now := f.Clock.Now()
	out := make([]*StockReservation, 0, len(lines))
	for _, l := range lines {
		r, err := NewStockReservation(l.SKU, userID, idempotencyKey, l.Quantity, now, f.TTL)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
