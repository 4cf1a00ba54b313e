// Package money holds the currency arithmetic rules: all stored amounts are
// rounded to 2 decimal places at write time. Intermediate computation may use
// float64; rounding goes through shopspring/decimal so half-cent values round
// away from zero consistently on every platform.
package money

import "github.com/shopspring/decimal"

// Epsilon is the noise threshold for balance comparisons. Anything below a
// cent is treated as settled.
const Epsilon = 0.01

// Round rounds an amount to 2 decimal places, half away from zero.
func Round(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// EqualShares divides total across n parties so that every share is a 2dp
// amount and the shares sum exactly to the rounded total. The leftover cents
// from flooring go to the first parties, largest-remainder style.
func EqualShares(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	t := decimal.NewFromFloat(total).Round(2)
	base := t.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	cent := decimal.New(1, -2)

	// Cents left over after everyone gets the floored base share.
	leftover := int(t.Sub(base.Mul(decimal.NewFromInt(int64(n)))).Div(cent).IntPart())

	shares := make([]float64, n)
	for i := range shares {
		s := base
		if i < leftover {
			s = s.Add(cent)
		}
		shares[i], _ = s.Float64()
	}
	return shares
}
