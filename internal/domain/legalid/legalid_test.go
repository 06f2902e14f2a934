//go:build unit

package legalid_test

import (
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/legalid"

	"github.com/stretchr/testify/assert"
)

func TestValidateTaxNumber(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "10 digits", input: "1234567890"},
		{name: "11 digits", input: "12345678901"},
		{name: "9 digits", input: "123456789", errIs: legalid.ErrInvalidTaxNumber},
		{name: "12 digits", input: "123456789012", errIs: legalid.ErrInvalidTaxNumber},
		{name: "letters", input: "12345ABCDE", errIs: legalid.ErrInvalidTaxNumber},
		{name: "non-ascii digits", input: "١٢٣٤٥٦٧٨٩٠", errIs: legalid.ErrInvalidTaxNumber},
		{name: "empty", input: "", errIs: legalid.ErrInvalidTaxNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := legalid.ValidateTaxNumber(tc.input)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestValidateNationalID(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid sample", input: "10000000146", valid: true},
		{name: "valid sequential", input: "12345678950", valid: true},
		{name: "wrong tenth digit", input: "10000000156", valid: false},
		{name: "wrong eleventh digit", input: "10000000147", valid: false},
		{name: "leading zero", input: "01234567890", valid: false},
		{name: "too short", input: "1000000014", valid: false},
		{name: "non digit", input: "1000000014X", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := legalid.ValidateNationalID(tc.input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, legalid.ErrInvalidNationalID)
			}
		})
	}
}

func TestValidateBuyer(t *testing.T) {
	assert.NoError(t, legalid.ValidateBuyer(legalid.BuyerIndividual, "", ""))
	assert.NoError(t, legalid.ValidateBuyer(legalid.BuyerIndividual, "", "10000000146"))
	assert.ErrorIs(t, legalid.ValidateBuyer(legalid.BuyerIndividual, "", "10000000147"), legalid.ErrInvalidNationalID)

	assert.NoError(t, legalid.ValidateBuyer(legalid.BuyerCorporate, "1234567890", ""))
	assert.ErrorIs(t, legalid.ValidateBuyer(legalid.BuyerCorporate, "", ""), legalid.ErrTaxNumberRequired)
	assert.ErrorIs(t, legalid.ValidateBuyer(legalid.BuyerCorporate, "12", ""), legalid.ErrInvalidTaxNumber)

	assert.ErrorIs(t, legalid.ValidateBuyer("reseller", "", ""), legalid.ErrInvalidBuyerType)
}

func TestParseBuyerType(t *testing.T) {
	bt, err := legalid.ParseBuyerType("")
	assert.NoError(t, err)
	assert.Equal(t, legalid.BuyerIndividual, bt)

	bt, err = legalid.ParseBuyerType("corporate")
	assert.NoError(t, err)
	assert.Equal(t, legalid.BuyerCorporate, bt)

	_, err = legalid.ParseBuyerType("other")
	assert.ErrorIs(t, err, legalid.ErrInvalidBuyerType)
}
