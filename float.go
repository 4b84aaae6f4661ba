package bigmoney

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	shopspring "github.com/shopspring/decimal"
)

// NewAmountFromFloat64 converts a float to a rounded amount.
// The float is expanded to its shortest decimal representation, which is
// truncated to three fractional digits. The third digit then decides the
// rounding: the amount is rounded away from zero if the digit is at least 5
// for non-negative floats, or at least 6 for negative floats.
// Ties are therefore resolved toward positive infinity:
//
//	 0.345 ->  0.35
//	-0.345 -> -0.34
//	-0.346 -> -0.35
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf).
func NewAmountFromFloat64(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", f)
	}
	s := shopspring.NewFromFloat(f).Truncate(3).StringFixed(3)

	// Sign
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	// Cents and the deciding digit
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot != 4 {
		return Amount{}, fmt.Errorf("converting float %v: unexpected expansion %q", f, s)
	}
	x, ok := new(big.Int).SetString(s[:dot]+s[dot+1:dot+3], 10)
	if !ok {
		return Amount{}, fmt.Errorf("converting float %v: unexpected expansion %q", f, s)
	}
	threshold := byte('5')
	if neg {
		threshold = '6'
	}
	if s[dot+3] >= threshold {
		x.Add(x, bigOne)
	}
	if neg {
		x.Neg(x)
	}
	return newAmount(x), nil
}

// MustNewAmountFromFloat64 is like [NewAmountFromFloat64] but panics if the
// float is a special value.
func MustNewAmountFromFloat64(f float64) Amount {
	a, err := NewAmountFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("NewAmountFromFloat64(%v) failed: %v", f, err))
	}
	return a
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data, as float64 has a smaller precision
// than the amount.
// See also constructor [NewAmountFromFloat64].
func (a Amount) Float64() float64 {
	f, _ := shopspring.NewFromBigInt(a.BigInt(), -2).Float64()
	return f
}
