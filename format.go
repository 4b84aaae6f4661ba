package bigmoney

// layout describes how amounts of a currency are written.
type layout struct {
	group    byte // thousands separator, 0 means pass-through
	decimal  byte // decimal separator, 0 means no fractional digits
	fraction bool
}

var layoutLookup = [...]layout{
	XXX: {},
	CHF: {group: ',', decimal: '.', fraction: true},
	CNY: {},
	EUR: {group: '.', decimal: ',', fraction: true},
	GBP: {group: '.', decimal: ',', fraction: true},
	JPY: {group: ','},
	LTL: {group: ' ', decimal: ',', fraction: true},
	PLN: {group: ' ', decimal: ',', fraction: true},
	SEK: {group: ' ', decimal: ',', fraction: true},
	SKK: {group: ' ', decimal: ',', fraction: true},
	UAH: {group: ' ', decimal: ',', fraction: true},
	USD: {group: ',', decimal: '.', fraction: true},
}

// Format returns the amount written according to the conventions of
// the currency with the given code:
//
//	| Currency                | Example           |
//	| ----------------------- | ----------------- |
//	| JPY                     | -1,560            |
//	| EUR, GBP                | -1.560,00         |
//	| CHF, USD                | -1,560.00         |
//	| LTL, PLN, SEK, SKK, UAH | -1 560,00         |
//	| anything else           | -1560.00          |
//
// Codes are matched exactly, so "usd" is not USD.
// Unknown codes are not an error, the canonical representation is returned.
// See also method [Currency.FormatAmount].
func Format(curr string, a Amount) string {
	c, err := ParseCurr(curr)
	if err != nil || c.Code() != curr {
		return a.String()
	}
	return c.FormatAmount(a)
}

// FormatAmount returns the amount written according to the conventions of
// the currency. See [Format] for the list of supported conventions.
func (c Currency) FormatAmount(a Amount) string {
	if int(c) >= len(layoutLookup) || layoutLookup[c].group == 0 {
		return a.String()
	}
	l := layoutLookup[c]
	s := groupThousands(a.IntegralPart(), l.group)
	if !l.fraction {
		return s
	}
	cents := a.String()
	return s + string(l.decimal) + cents[len(cents)-2:]
}

// groupThousands inserts the separator between every three digits of the
// integer, counting from the right. The minus sign is kept in front.
func groupThousands(integer string, sep byte) string {
	sign := ""
	if len(integer) > 0 && integer[0] == '-' {
		sign, integer = "-", integer[1:]
	}
	n := len(integer)
	if n <= 3 {
		return sign + integer
	}
	buf := make([]byte, 0, len(sign)+n+(n-1)/3)
	buf = append(buf, sign...)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, integer[i])
	}
	return string(buf)
}
