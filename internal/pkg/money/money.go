// Package money holds integer minor-unit arithmetic. Amounts are cents,
// rates are basis points (1/100 of a percent).
package money

import "math"

const BasisPointsScale = 10000

// ApplyBasisPoints returns amount*bps/10000 rounded half away from zero.
func ApplyBasisPoints(amount, bps int64) int64 {
	return DivRound(amount*bps, BasisPointsScale)
}

// DivRound divides with round-half-away-from-zero. d must be positive.
func DivRound(n, d int64) int64 {
	if d <= 0 {
		return 0
	}
	q := n / d
	r := n % d
	if r < 0 {
		r = -r
	}
	if 2*r >= d {
		if n < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// BasisPointsFromPercent converts 12.5 into 1250.
func BasisPointsFromPercent(percent float64) int64 {
	return int64(math.Round(percent * 100))
}

func PercentFromBasisPoints(bps int64) float64 {
	return float64(bps) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToMajor renders cents as a decimal amount, e.g. 15389 -> 153.89.
func ToMajor(cents int64) float64 {
	return float64(cents) / 100
}
