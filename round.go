package bigmoney

import (
	"fmt"
	"math/big"
)

var (
	oneUnit = Amount{cents: "100"}
	twenty  = Amount{cents: "2000"}
)

// Mul returns the product of amounts a and b rounded to cents.
//
// The exact product is computed in hundredths of cents and truncated toward
// zero. The truncated result is then incremented by one cent if the two
// discarded digits are 50 or more. The increment is applied regardless of the
// sign, so negative products with a discarded half move toward zero, for
// example -12.60 cents becomes -11 cents.
func (a Amount) Mul(b Amount) Amount {
	x := a.BigInt()
	return roundHundredths(x.Mul(x, b.BigInt()))
}

// Quo returns the quotient of amounts a and b rounded to cents.
//
// The quotient is computed in hundredths of cents with truncation toward zero
// and then rounded the same way as in [Amount.Mul].
//
// Quo returns an error wrapping [ErrDivisionByZero] if b is zero.
func (a Amount) Quo(b Amount) (Amount, error) {
	if b.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	x := a.BigInt()
	x.Mul(x, bigTenThousand)
	return roundHundredths(x.Quo(x, b.BigInt())), nil
}

// roundHundredths converts hundredths of cents to an amount.
func roundHundredths(x *big.Int) Amount {
	q, r := new(big.Int).QuoRem(x, bigHundred, new(big.Int))
	if r.CmpAbs(bigFifty) >= 0 {
		q.Add(q, bigOne)
	}
	return newAmount(q)
}

// Percent returns p percent of amount a rounded to cents.
//
// The exact result is computed in hundredths of cents. The quotient is
// truncated toward zero and incremented by one cent if the Euclidean remainder
// modulo 10000 is greater than 4999.
// Unlike [Amount.Mul], the remainder of a negative product is taken
// modulo 10000 as a non-negative number.
func (a Amount) Percent(p Amount) Amount {
	x := a.BigInt()
	x.Mul(x, p.BigInt())
	q := new(big.Int).Quo(x, bigTenThousand)
	r := new(big.Int).Mod(x, bigTenThousand)
	if r.Cmp(bigPercentHalf) > 0 {
		q.Add(q, bigOne)
	}
	return newAmount(q)
}

// RoundUpTo5Cents adds the number of cents needed to make the last digit of
// the amount a multiple of 5, for example 1.02 becomes 1.05
// and 156.06 becomes 156.10.
// The missing cents are added for negative amounts too, so -1.02 becomes -0.99.
func (a Amount) RoundUpTo5Cents() Amount {
	cents := a.Cents()
	d := int(cents[len(cents)-1]-'0') % 5
	if d == 0 {
		return a
	}
	return a.Add(newAmount(big.NewInt(int64(5 - d))))
}

// RoundTo5Cents rounds the amount to the nearest multiple of 5 cents,
// for example 442.26 becomes 442.25 and 1.88 becomes 1.90.
// The amount is multiplied by 20, rounded to a whole number with
// halves rounded up, then divided back by 20.
func (a Amount) RoundTo5Cents() Amount {
	r, err := a.Mul(twenty).roundWhole().Quo(twenty)
	if err != nil {
		// twenty is never zero
		panic(err)
	}
	return r
}

// roundWhole drops the fractional digits and adds one unit if they were
// 50 or more. Like [Amount.Mul], the unit is added regardless of the sign.
func (a Amount) roundWhole() Amount {
	q, r := new(big.Int).QuoRem(a.BigInt(), bigHundred, new(big.Int))
	whole := newAmount(q.Mul(q, bigHundred))
	if r.CmpAbs(bigFifty) >= 0 {
		return whole.Add(oneUnit)
	}
	return whole
}
