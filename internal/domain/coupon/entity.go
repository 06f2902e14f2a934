package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	ErrUsageUnderflow    = errors.New("coupon usage count cannot go negative")
)

type Coupon struct {
	id               uuid.UUID
	code             Code
	discount         Discount
	minOrderCents    int64
	usageLimit       *int
	usageCount       int
	isActive         bool
	singleUsePerUser bool
	validFrom        *time.Time
	validTo          *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

type Params struct {
	Code             string
	AmountOffCents   *int64
	PercentOff       *float64
	MinOrderCents    int64
	UsageLimit       *int
	SingleUsePerUser bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(p.AmountOffCents, p.PercentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:               uuid.New(),
		code:             code,
		discount:         discount,
		minOrderCents:    p.MinOrderCents,
		usageLimit:       p.UsageLimit,
		isActive:         true,
		singleUsePerUser: p.SingleUsePerUser,
		validFrom:        p.ValidFrom,
		validTo:          p.ValidTo,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code string,
	discount Discount,
	minOrderCents int64,
	usageLimit *int,
	usageCount int,
	isActive, singleUsePerUser bool,
	validFrom, validTo *time.Time,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:               id,
		code:             Code(NormalizeCode(code)),
		discount:         discount,
		minOrderCents:    minOrderCents,
		usageLimit:       usageLimit,
		usageCount:       usageCount,
		isActive:         isActive,
		singleUsePerUser: singleUsePerUser,
		validFrom:        validFrom,
		validTo:          validTo,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Coupon) HasStarted(t time.Time) bool {
	return c.validFrom == nil || !t.Before(*c.validFrom)
}

func (c *Coupon) HasExpired(t time.Time) bool {
	return c.validTo != nil && t.After(*c.validTo)
}

func (c *Coupon) UsageExhausted() bool {
	return c.usageLimit != nil && c.usageCount >= *c.usageLimit
}

func (c *Coupon) IncrementUsage() error {
	if c.UsageExhausted() {
		return ErrUsageLimitReached
	}
	c.usageCount++
	return nil
}

func (c *Coupon) DecrementUsage() error {
	if c.usageCount == 0 {
		return ErrUsageUnderflow
	}
	c.usageCount--
	return nil
}

func (c *Coupon) Deactivate() { c.isActive = false }

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Discount() Discount     { return c.discount }
func (c *Coupon) MinOrderCents() int64   { return c.minOrderCents }
func (c *Coupon) UsageLimit() *int       { return c.usageLimit }
func (c *Coupon) UsageCount() int        { return c.usageCount }
func (c *Coupon) IsActive() bool         { return c.isActive }
func (c *Coupon) SingleUsePerUser() bool { return c.singleUsePerUser }
func (c *Coupon) ValidFrom() *time.Time  { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time    { return c.validTo }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time   { return c.updatedAt }
