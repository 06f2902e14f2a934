package reservation

import (
	"bytes"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("reservation quantity must be positive")

// SKU identifies one stock row: a product, or one of its variants.
type SKU struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
}

func NewSKU(productID uuid.UUID, variantID *uuid.UUID) SKU {
	return SKU{ProductID: productID, VariantID: variantID}
}

// Key is a comparable form usable as a map key.
func (s SKU) Key() SKUKey {
	k := SKUKey{ProductID: s.ProductID}
	if s.VariantID != nil {
		k.VariantID = *s.VariantID
	}
	return k
}

type SKUKey struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
}

func (k SKUKey) SKU() SKU {
	if k.VariantID == uuid.Nil {
		return SKU{ProductID: k.ProductID}
	}
	v := k.VariantID
	return SKU{ProductID: k.ProductID, VariantID: &v}
}

// Less orders keys by product then variant. Locking stock rows in this
// order keeps concurrent checkouts from deadlocking each other.
func (k SKUKey) Less(o SKUKey) bool {
	if c := bytes.Compare(k.ProductID[:], o.ProductID[:]); c != 0 {
		return c < 0
	}
	return bytes.Compare(k.VariantID[:], o.VariantID[:]) < 0
}

type Quantity int

func NewQuantity(n int) (Quantity, error) {
	if n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return Quantity(n), nil
}

func (q Quantity) Int() int { return int(q) }
