// Package legalid validates buyer identifiers required on invoices in the
// storefront's region: the corporate tax number and the personal national id.
package legalid

import "errors"

var (
	ErrInvalidTaxNumber  = errors.New("invalid tax number")
	ErrInvalidNationalID = errors.New("invalid national identity number")
	ErrTaxNumberRequired = errors.New("tax number is required for corporate buyers")
	ErrInvalidBuyerType  = errors.New("invalid buyer type")
)

type BuyerType string

const (
	BuyerIndividual BuyerType = "individual"
	BuyerCorporate  BuyerType = "corporate"
)

func ParseBuyerType(s string) (BuyerType, error) {
	switch BuyerType(s) {
	case "", BuyerIndividual:
		return BuyerIndividual, nil
	case BuyerCorporate:
		return BuyerCorporate, nil
	default:
		return "", ErrInvalidBuyerType
	}
}

// ValidateTaxNumber is a format check only: 10 or 11 ASCII digits.
func ValidateTaxNumber(s string) error {
	if len(s) != 10 && len(s) != 11 {
		return ErrInvalidTaxNumber
	}
	if !allDigits(s) {
		return ErrInvalidTaxNumber
	}
	return nil
}

// ValidateNationalID checks the 11 digit id with its two check digits.
func ValidateNationalID(s string) error {
	if len(s) != 11 || !allDigits(s) || s[0] == '0' {
		return ErrInvalidNationalID
	}

	var d [11]int
	for i := range s {
		d[i] = int(s[i] - '0')
	}

	odd := d[0] + d[2] + d[4] + d[6] + d[8]
	even := d[1] + d[3] + d[5] + d[7]
	tenth := ((odd*7-even)%10 + 10) % 10
	if tenth != d[9] {
		return ErrInvalidNationalID
	}

	sum := 0
	for i := 0; i < 10; i++ {
		sum += d[i]
	}
	if sum%10 != d[10] {
		return ErrInvalidNationalID
	}
	return nil
}

// ValidateBuyer applies the per-buyer-type rules. Individuals are not
// required to supply a national id, but a supplied one must be valid.
func ValidateBuyer(buyerType BuyerType, taxNumber, nationalID string) error {
	switch buyerType {
	case BuyerCorporate:
		if taxNumber == "" {
			return ErrTaxNumberRequired
		}
		return ValidateTaxNumber(taxNumber)
	case BuyerIndividual:
		if nationalID == "" {
			return nil
		}
		return ValidateNationalID(nationalID)
	default:
		return ErrInvalidBuyerType
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
