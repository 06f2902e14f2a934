package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotReserved           = errors.New("reservation is no longer reserved")
	ErrMissingIdempotencyKey = errors.New("reservation requires an idempotency key")
)

// StockReservation is a time boxed hold on units of one SKU. It never
// changes permanent stock itself.
type StockReservation struct {
	id             uuid.UUID
	sku            SKU
	userID         uuid.UUID
	orderID        *uuid.UUID
	idempotencyKey string
	quantity       Quantity
	status         Status
	expiresAt      time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewStockReservation(
	sku SKU,
	userID uuid.UUID,
	idempotencyKey string,
	quantity int,
	now time.Time,
	ttl time.Duration,
) (*StockReservation, error) {
	if idempotencyKey == "" {
		return nil, ErrMissingIdempotencyKey
	}
	qty, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}

	return &StockReservation{
		id:             uuid.New(),
		sku:            sku,
		userID:         userID,
		idempotencyKey: idempotencyKey,
		quantity:       qty,
		status:         StatusReserved,
		expiresAt:      now.Add(ttl),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructStockReservation(
	id uuid.UUID,
	sku SKU,
	userID uuid.UUID,
	orderID *uuid.UUID,
	idempotencyKey string,
	quantity int,
	status Status,
	expiresAt, createdAt, updatedAt time.Time,
) *StockReservation {
	return &StockReservation{
		id:             id,
		sku:            sku,
		userID:         userID,
		orderID:        orderID,
		idempotencyKey: idempotencyKey,
		quantity:       Quantity(quantity),
		status:         status,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// IsActiveAt reports whether the hold still counts against availability.
func (r *StockReservation) IsActiveAt(now time.Time) bool {
	return r.status == StatusReserved && r.expiresAt.After(now)
}

func (r *StockReservation) AttachOrder(orderID uuid.UUID) {
	r.orderID = &orderID
}

func (r *StockReservation) Commit() error {
	if r.status != StatusReserved {
		return ErrNotReserved
	}
	r.status = StatusCommitted
	return nil
}

func (r *StockReservation) Release() error {
	if r.status != StatusReserved {
		return ErrNotReserved
	}
	r.status = StatusReleased
	return nil
}

func (r *StockReservation) ID() uuid.UUID          { return r.id }
func (r *StockReservation) SKU() SKU               { return r.sku }
func (r *StockReservation) ProductID() uuid.UUID   { return r.sku.ProductID }
func (r *StockReservation) VariantID() *uuid.UUID  { return r.sku.VariantID }
func (r *StockReservation) UserID() uuid.UUID      { return r.userID }
func (r *StockReservation) OrderID() *uuid.UUID    { return r.orderID }
func (r *StockReservation) IdempotencyKey() string { return r.idempotencyKey }
func (r *StockReservation) Quantity() int          { return r.quantity.Int() }
func (r *StockReservation) Status() Status         { return r.status }
func (r *StockReservation) ExpiresAt() time.Time   { return r.expiresAt }
func (r *StockReservation) CreatedAt() time.Time   { return r.createdAt }
func (r *StockReservation) UpdatedAt() time.Time   { return r.updatedAt }
