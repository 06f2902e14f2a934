//go:build unit

package money_test

import (
	"testing"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestApplyBasisPoints(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int64
		bps      int64
		expected int64
	}{
		{name: "10% of 139.90", amount: 13990, bps: 1000, expected: 1399},
		{name: "10% of 153.89 rounds half up", amount: 15389, bps: 1000, expected: 1539},
		{name: "exact half rounds away from zero", amount: 5, bps: 1000, expected: 1},
		{name: "below half rounds down", amount: 4, bps: 1000, expected: 0},
		{name: "negative half rounds away from zero", amount: -5, bps: 1000, expected: -1},
		{name: "zero rate", amount: 12345, bps: 0, expected: 0},
		{name: "18% vat", amount: 10000, bps: 1800, expected: 1800},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.ApplyBasisPoints(tc.amount, tc.bps))
		})
	}
}

func TestDivRound(t *testing.T) {
	assert.Equal(t, int64(3), money.DivRound(5, 2))
	assert.Equal(t, int64(-3), money.DivRound(-5, 2))
	assert.Equal(t, int64(2), money.DivRound(7, 3))
	assert.Equal(t, int64(0), money.DivRound(7, 0))
}

func TestBasisPointsFromPercent(t *testing.T) {
	assert.Equal(t, int64(1000), money.BasisPointsFromPercent(10))
	assert.Equal(t, int64(1250), money.BasisPointsFromPercent(12.5))
	assert.Equal(t, int64(1), money.BasisPointsFromPercent(0.01))
	assert.InDelta(t, 12.5, money.PercentFromBasisPoints(1250), 0.0001)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, int64(0), money.Clamp(-10, 0, 100))
	assert.Equal(t, int64(100), money.Clamp(150, 0, 100))
	assert.Equal(t, int64(42), money.Clamp(42, 0, 100))
}
