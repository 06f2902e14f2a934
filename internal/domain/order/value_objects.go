package order

import (
	"crypto/subtle"
	"io"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/legalid"

	"github.com/oklog/ulid/v2"
)

const numberPrefix = "ORD-"

// NewNumber builds a sortable order number such as ORD-01J0Z3....
func NewNumber(now time.Time, entropy io.Reader) string {
	if entropy == nil {
		entropy = ulid.DefaultEntropy()
	}
	return numberPrefix + ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

type ShippingAddress struct {
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	District   string
	PostalCode string
	Country    string
}

type Buyer struct {
	Email      string
	Type       legalid.BuyerType
	TaxNumber  string
	TaxOffice  string
	NationalID string
	Company    string
}

type Amounts struct {
	SubtotalCents int64
	ShippingCents int64
	TaxCents      int64
	DiscountCents int64
}

func keysEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
