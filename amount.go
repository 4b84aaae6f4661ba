package bigmoney

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	// ErrMalformedAmount is returned when a string does not match the
	// amount grammar: an optional minus sign, one or more digits, a dot and
	// exactly two fractional digits.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrMalformedCents is returned when a string is not a signed sequence
	// of decimal digits.
	ErrMalformedCents = errors.New("malformed cents")
	// ErrDivisionByZero is returned when the divisor of [Amount.Quo] is zero.
	ErrDivisionByZero = errors.New("division by zero")

	errInexactDecimal = errors.New("more than 2 fractional digits")
)

var (
	bigOne         = big.NewInt(1)
	bigFifty       = big.NewInt(50)
	bigHundred     = big.NewInt(100)
	bigTenThousand = big.NewInt(10000)
	bigPercentHalf = big.NewInt(4999)
)

// Amount type represents a monetary value with exactly two fractional digits.
// There is no limit on the number of integral digits.
// Its zero value corresponds to "0.00".
// Amount is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
// Two amounts are equal if and only if they compare equal with the == operator.
type Amount struct {
	cents string // signed digits without leading zeros, "" for zero
}

// newAmount creates an amount from the number of cents.
// The argument is not retained.
func newAmount(cents *big.Int) Amount {
	if cents.Sign() == 0 {
		return Amount{}
	}
	return Amount{cents: cents.String()}
}

// NewAmountFromBigInt returns an amount equal to cents / 100.
// The argument is not retained. See also method [Amount.BigInt].
func NewAmountFromBigInt(cents *big.Int) Amount {
	if cents == nil {
		return Amount{}
	}
	return newAmount(cents)
}

// NewAmountFromCents converts a string of cents to an amount.
// The input string must consist of an optional minus sign followed by
// one or more decimal digits, for example:
//
//	12699
//	-1
//	0
//
// Leading zeros are accepted and dropped. See also method [Amount.Cents].
//
// NewAmountFromCents returns an error wrapping [ErrMalformedCents]
// if the string does not represent a signed integer.
func NewAmountFromCents(cents string) (Amount, error) {
	x, err := parseCents(cents)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing cents %q: %w", cents, err)
	}
	return newAmount(x), nil
}

func parseCents(s string) (*big.Int, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return nil, ErrMalformedCents
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrMalformedCents
		}
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrMalformedCents
	}
	return x, nil
}

// ParseAmount converts a string to an amount.
// The input string must be in the following format:
//
//	-?\d+\.\d{2}
//
// For example, "126.99", "-0.32" or "0.00".
// Thousands separators, exponents and a leading plus sign are not accepted.
// The negative zero "-0.00" is accepted and equals "0.00".
//
// ParseAmount returns an error wrapping [ErrMalformedAmount] if the string
// does not match the format.
func ParseAmount(amount string) (Amount, error) {
	x, err := parseAmount(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return newAmount(x), nil
}

func parseAmount(s string) (*big.Int, error) {
	pos := 0
	if len(s) > 0 && s[0] == '-' {
		pos++
	}
	dot := len(s) - 3
	// Integer digits
	if dot <= pos || s[dot] != '.' {
		return nil, ErrMalformedAmount
	}
	for i := pos; i < dot; i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, ErrMalformedAmount
		}
	}
	// Fractional digits
	for i := dot + 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, ErrMalformedAmount
		}
	}
	x, ok := new(big.Int).SetString(s[:dot]+s[dot+1:], 10)
	if !ok {
		return nil, ErrMalformedAmount
	}
	return x, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(amount string) Amount {
	a, err := ParseAmount(amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", amount, err))
	}
	return a
}

// AmountToCents removes the decimal point from an amount string.
// The result never has leading zeros, for example "0.99" becomes "99".
// See also [ParseAmount] and [Amount.Cents].
func AmountToCents(amount string) (string, error) {
	a, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	return a.Cents(), nil
}

// CentsToAmount inserts a decimal point two digits from the right of a
// string of cents, for example "1" becomes "0.01".
// See also [NewAmountFromCents] and [Amount.String].
func CentsToAmount(cents string) (string, error) {
	a, err := NewAmountFromCents(cents)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// NewAmountFromDecimal converts a decimal to an amount.
// Trailing zeros beyond the second fractional digit are removed first.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the decimal has more than two
// significant fractional digits.
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	d = d.Trim(2)
	if d.Scale() > 2 {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", d, errInexactDecimal)
	}
	x := new(big.Int).SetUint64(d.Coef())
	if d.Scale() < 2 {
		x.Mul(x, pow10(2-d.Scale()))
	}
	if d.IsNeg() {
		x.Neg(x)
	}
	return newAmount(x), nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Decimal returns the decimal representation of the amount with a scale of 2.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the amount has more than [decimal.MaxPrec] digits.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.ParseExact(a.String(), 2)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// BigInt returns the number of cents in the amount.
// The result is a new value owned by the caller.
// See also constructor [NewAmountFromBigInt].
func (a Amount) BigInt() *big.Int {
	x := new(big.Int)
	if a.cents != "" {
		x.SetString(a.cents, 10)
	}
	return x
}

// Cents returns the number of cents in the amount as a string of digits with
// an optional minus sign and no leading zeros.
// See also constructor [NewAmountFromCents].
func (a Amount) Cents() string {
	if a.cents == "" {
		return "0"
	}
	return a.cents
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the amount, for example "-10001.00" or "0.01".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	cents := a.Cents()
	sign := ""
	if cents[0] == '-' {
		sign, cents = "-", cents[1:]
	}
	// Leading zeros
	for len(cents) < 3 {
		cents = "0" + cents
	}
	return sign + cents[:len(cents)-2] + "." + cents[len(cents)-2:]
}

// IntegralPart returns the digits before the decimal point, including the
// minus sign, for example "-55" for "-55.10".
// For negative amounts within one the result is "-0".
func (a Amount) IntegralPart() string {
	s := a.String()
	return s[:len(s)-3]
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.cents == "":
		return 0
	case a.cents[0] == '-':
		return -1
	default:
		return 1
	}
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.IsNeg() {
		return a.Neg()
	}
	return a
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	switch a.Sign() {
	case 0:
		return a
	case -1:
		return Amount{cents: a.cents[1:]}
	default:
		return Amount{cents: "-" + a.cents}
	}
}

// Add returns the exact sum of amounts a and b.
func (a Amount) Add(b Amount) Amount {
	x := a.BigInt()
	return newAmount(x.Add(x, b.BigInt()))
}

// Sub returns the exact difference between amounts a and b.
func (a Amount) Sub(b Amount) Amount {
	x := a.BigInt()
	return newAmount(x.Sub(x, b.BigInt()))
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one cent each.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	quo, rem := new(big.Int).QuoRem(a.BigInt(), big.NewInt(int64(parts)), new(big.Int))
	ulp := big.NewInt(int64(rem.Sign()))
	n := new(big.Int).Abs(rem).Int64()

	res := make([]Amount, parts)
	for i := range res {
		if int64(i) < n {
			res[i] = newAmount(new(big.Int).Add(quo, ulp))
			continue
		}
		res[i] = newAmount(quo)
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.BigInt().Cmp(b.BigInt())
}

// Equal returns true if a = b.
func (a Amount) Equal(b Amount) bool {
	return a == b
}

// Less returns true if a < b.
func (a Amount) Less(b Amount) bool {
	return a.Cmp(b) < 0
}

// Greater returns true if a > b.
func (a Amount) Greater(b Amount) bool {
	return a.Cmp(b) > 0
}

// LessOrEqual returns true if a <= b.
func (a Amount) LessOrEqual(b Amount) bool {
	return a.Cmp(b) <= 0
}

// GreaterOrEqual returns true if a >= b.
func (a Amount) GreaterOrEqual(b Amount) bool {
	return a.Cmp(b) >= 0
}

// Min returns the smaller amount.
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
