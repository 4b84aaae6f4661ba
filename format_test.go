package bigmoney

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		curr, a, want string
	}{
		// CHF, USD
		{"CHF", "560.05", "560.05"},
		{"CHF", "-1560.00", "-1,560.00"},
		{"USD", "1234567.89", "1,234,567.89"},
		{"USD", "-0.50", "-0.50"},

		// JPY
		{"JPY", "560.00", "560"},
		{"JPY", "0.99", "0"},
		{"JPY", "236800.00", "236,800"},
		{"JPY", "-1000000000.00", "-1,000,000,000"},
		{"JPY", "-100000000000.00", "-100,000,000,000"},

		// EUR, GBP
		{"EUR", "560.00", "560,00"},
		{"EUR", "-1560.00", "-1.560,00"},
		{"EUR", "-100000000000.00", "-100.000.000.000,00"},
		{"GBP", "12345.67", "12.345,67"},

		// SEK, LTL, PLN, SKK, UAH
		{"SEK", "560.00", "560,00"},
		{"SEK", "-1560.00", "-1 560,00"},
		{"SEK", "-100000000000.00", "-100 000 000 000,00"},
		{"LTL", "1000.10", "1 000,10"},
		{"PLN", "999.99", "999,99"},
		{"SKK", "-1000.00", "-1 000,00"},
		{"UAH", "10000.01", "10 000,01"},

		// Pass-through
		{"CNY", "-1560.00", "-1560.00"},
		{"XXX", "1560.00", "1560.00"},
		{"ABC", "1560.00", "1560.00"},
		{"", "1560.00", "1560.00"},
		{"usd", "-1000000.50", "-1000000.50"},
		{"jpy", "-1000000.50", "-1000000.50"},
		{"eur", "-1000000.50", "-1000000.50"},
		{"sek", "-1000000.50", "-1000000.50"},
		{"Usd", "1000.00", "1000.00"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.a)
		got := Format(tt.curr, a)
		if got != tt.want {
			t.Errorf("Format(%q, %q) = %q, want %q", tt.curr, a, got, tt.want)
		}
	}
}

func TestCurrency_FormatAmount(t *testing.T) {
	tests := []struct {
		curr Currency
		a    string
		want string
	}{
		{USD, "1560.00", "1,560.00"},
		{EUR, "1560.00", "1.560,00"},
		{XXX, "1560.00", "1560.00"},
		{Currency(200), "1560.00", "1560.00"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.a)
		got := tt.curr.FormatAmount(a)
		if got != tt.want {
			t.Errorf("%v.FormatAmount(%q) = %q, want %q", tt.curr, a, got, tt.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		integer string
		want    string
	}{
		{"0", "0"},
		{"-0", "-0"},
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"-123", "-123"},
		{"1234", "1,234"},
		{"-1234", "-1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-100000000000", "-100,000,000,000"},
	}
	for _, tt := range tests {
		got := groupThousands(tt.integer, ',')
		if got != tt.want {
			t.Errorf("groupThousands(%q, ',') = %q, want %q", tt.integer, got, tt.want)
		}
	}
}
