package cart

import (
	"errors"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/pricing"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/reservation"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// Item is a cart line with the product snapshot needed for checkout.
type Item struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	VariantID      *uuid.UUID
	ProductName    string
	Quantity       int
	UnitPriceCents int64
	WeightGrams    int
}

func (i Item) SKU() reservation.SKU {
	return reservation.NewSKU(i.ProductID, i.VariantID)
}

// Cart belongs to a user or to an anonymous session.
type Cart struct {
	id        uuid.UUID
	userID    *uuid.UUID
	sessionID *string
	items     []Item
}

func Reconstruct(id uuid.UUID, userID *uuid.UUID, sessionID *string, items []Item) *Cart {
	return &Cart{id: id, userID: userID, sessionID: sessionID, items: items}
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.items) == 0
}

func (c *Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, len(c.items))
	for i, it := range c.items {
		lines[i] = pricing.Line{
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			WeightGrams:    it.WeightGrams,
		}
	}
	return lines
}

func (c *Cart) ReservationLines() []reservation.Line {
	lines := make([]reservation.Line, len(c.items))
	for i, it := range c.items {
		lines[i] = reservation.Line{SKU: it.SKU(), Quantity: it.Quantity}
	}
	return lines
}

func (c *Cart) ID() uuid.UUID      { return c.id }
func (c *Cart) UserID() *uuid.UUID { return c.userID }
func (c *Cart) SessionID() *string { return c.sessionID }
func (c *Cart) Items() []Item      { return c.items }
