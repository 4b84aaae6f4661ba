/*
Package bigmoney implements exact monetary arithmetic on amounts with two
fractional digits and no limit on the number of integral digits.
All computations are carried out on cents with [math/big] integers, so no
operation ever goes through a binary floating-point number.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Unlimited magnitude of the integral part
  - Exact addition, subtraction and comparison
  - Multiplication, division and percentages with explicit rounding rules
  - Rounding to 5 cents, both upward and to the nearest
  - Formatting with the separators of a fixed set of currencies

# Representation

An [Amount] is written as an optional minus sign, one or more digits, a dot
and exactly two fractional digits:

	-?\d+\.\d{2}

This is the only format accepted by [ParseAmount] and the only format
produced by [Amount.String].
Internally the amount is kept as a string of cents, which can also be
obtained with [Amount.Cents] and converted back with [NewAmountFromCents].

# Rounding

Operations that cannot produce an exact result in cents round it:

  - [Amount.Mul] and [Amount.Quo] truncate the result in hundredths of cents
    toward zero and add one cent when the discarded two digits are 50 or more.
  - [Amount.Percent] adds one cent when the non-negative remainder modulo
    10000 is greater than 4999.
  - [NewAmountFromFloat64] rounds on the third fractional digit with a
    threshold of 5 for non-negative floats and 6 for negative floats.

The rules differ at exact half-cent boundaries, especially for negative
results, and callers relying on symmetric rounding should work with absolute
values.

# Formatting

[Format] writes amounts with the grouping and decimal separators of
JPY, EUR, GBP, CHF, USD, SEK, LTL, PLN, SKK and UAH.
Other currency codes leave the amount unchanged.

# Errors

[ParseAmount], [NewAmountFromCents] and [Amount.Quo] return errors that wrap
[ErrMalformedAmount], [ErrMalformedCents] and [ErrDivisionByZero]
respectively. The package never logs and never retries.
*/
package bigmoney
