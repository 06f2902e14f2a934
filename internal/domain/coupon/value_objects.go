package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/money"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount cannot be negative")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

// NormalizeCode is the lookup form of a user supplied code.
func NormalizeCode(code string) string {
	return strings.TrimSpace(strings.ToUpper(code))
}

func (c Code) String() string {
	return string(c)
}

// Discount is either a fixed amount in cents or a percentage. Percentages
// above 100 are accepted and clamped when applied.
type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffCents: &amountOffCents}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffCents *int64, percentOff *float64) (Discount, error) {
	if amountOffCents != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOffCents == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}
	if amountOffCents != nil {
		return NewFixedDiscount(*amountOffCents)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOffCents != nil
}

func (d Discount) AmountOffCents() *int64 { return d.amountOffCents }
func (d Discount) PercentOff() *float64   { return d.percentOff }

// Amount returns the discount for orderAmount, always within [0, orderAmount].
func (d Discount) Amount(orderAmount int64) int64 {
	if orderAmount <= 0 {
		return 0
	}
	var raw int64
	switch {
	case d.percentOff != nil:
		raw = money.ApplyBasisPoints(orderAmount, money.BasisPointsFromPercent(*d.percentOff))
	case d.amountOffCents != nil:
		raw = *d.amountOffCents
	}
	return money.Clamp(raw, 0, orderAmount)
}
