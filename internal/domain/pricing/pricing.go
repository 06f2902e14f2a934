// Package pricing computes order amounts in cents: subtotal, shipping from
// the region weight table, region tax and its per-line allocation.
package pricing

import (
	"errors"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/money"
)

var (
	ErrShippingRateNotFound = errors.New("no shipping rate covers the cart weight")
	ErrTaxRateNotFound      = errors.New("no tax rate configured for region")
)

type ShippingRate struct {
	Region         string
	MinWeightGrams int
	MaxWeightGrams *int // nil means open ended
	PriceCents     int64
}

func (r ShippingRate) Covers(weightGrams int) bool {
	if weightGrams < r.MinWeightGrams {
		return false
	}
	return r.MaxWeightGrams == nil || weightGrams <= *r.MaxWeightGrams
}

type TaxRate struct {
	Region      string
	BasisPoints int64
}

type Line struct {
	Quantity       int
	UnitPriceCents int64
	WeightGrams    int
}

func (l Line) LineTotal() int64 {
	return int64(l.Quantity) * l.UnitPriceCents
}

func Subtotal(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

func TotalWeight(lines []Line) int {
	w := 0
	for _, l := range lines {
		w += l.Quantity * l.WeightGrams
	}
	return w
}

// SelectShippingRate returns the first covering rate, rates are expected
// ordered by MinWeightGrams.
func SelectShippingRate(rates []ShippingRate, weightGrams int) *ShippingRate {
	for i := range rates {
		if rates[i].Covers(weightGrams) {
			return &rates[i]
		}
	}
	return nil
}

// ResolveShipping prefers a positive client supplied amount.
func ResolveShipping(clientCents int64, rate *ShippingRate) (int64, error) {
	if clientCents > 0 {
		return clientCents, nil
	}
	if rate == nil {
		return 0, ErrShippingRateNotFound
	}
	return rate.PriceCents, nil
}

func Tax(baseCents int64, rate TaxRate) int64 {
	return money.ApplyBasisPoints(baseCents, rate.BasisPoints)
}

// AllocateTax splits tax across lines by their share of the subtotal. The
// last line takes the remainder so the allocations always sum to tax.
func AllocateTax(lineTotals []int64, tax int64) []int64 {
	n := len(lineTotals)
	if n == 0 {
		return nil
	}
	out := make([]int64, n)

	var subtotal int64
	for _, t := range lineTotals {
		subtotal += t
	}

	var allocated int64
	for i := 0; i < n-1; i++ {
		if subtotal > 0 {
			out[i] = money.DivRound(tax*lineTotals[i], subtotal)
		}
		allocated += out[i]
	}
	out[n-1] = tax - allocated
	return out
}

type Quote struct {
	Subtotal  int64
	Shipping  int64
	Tax       int64
	LineTaxes []int64
}

func NewQuote(lines []Line, shippingCents int64, rate TaxRate) Quote {
	totals := make([]int64, len(lines))
	for i, l := range lines {
		totals[i] = l.LineTotal()
	}
	subtotal := Subtotal(lines)
	tax := Tax(subtotal+shippingCents, rate)

	return Quote{
		Subtotal:  subtotal,
		Shipping:  shippingCents,
		Tax:       tax,
		LineTaxes: AllocateTax(totals, tax),
	}
}

// OrderAmount is the base coupons are evaluated against.
func (q Quote) OrderAmount() int64 {
	return q.Subtotal + q.Shipping + q.Tax
}

func Total(subtotal, shipping, tax, discount int64) int64 {
	total := subtotal + shipping + tax - discount
	if total < 0 {
		return 0
	}
	return total
}
