package bigmoney

import (
	"math"
	"testing"
)

func TestNewAmountFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want string
		}{
			{0, "0.00"},
			{math.Copysign(0, -1), "0.00"},
			{11.12, "11.12"},
			{56, "56.00"},
			{56.3, "56.30"},
			{-11.12, "-11.12"},
			{-56, "-56.00"},
			{-56.3, "-56.30"},
			{56.3411111, "56.34"},
			{56.345, "56.35"},
			{0.3499, "0.35"},
			{0.345, "0.35"},
			{8.175, "8.18"},
			{8.165, "8.17"},
			{0.0049, "0.00"},
			{0.005, "0.01"},
			// Negative ties are rounded toward zero
			{-0.345, "-0.34"},
			{-0.346, "-0.35"},
			{-0.235, "-0.23"},
			{-100.996, "-101.00"},
			{-999.995, "-999.99"},
			{-999.996, "-1000.00"},
			{-0.005, "0.00"},
			{-0.0009, "0.00"},
			{1e21, "1000000000000000000000.00"},
			{-1e21, "-1000000000000000000000.00"},
		}
		for _, tt := range tests {
			got, err := NewAmountFromFloat64(tt.f)
			if err != nil {
				t.Errorf("NewAmountFromFloat64(%v) failed: %v", tt.f, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewAmountFromFloat64(%v) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
		for _, f := range tests {
			_, err := NewAmountFromFloat64(f)
			if err == nil {
				t.Errorf("NewAmountFromFloat64(%v) did not fail", f)
			}
		}
	})
}

func TestMustNewAmountFromFloat64(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewAmountFromFloat64(NaN) did not panic")
			}
		}()
		MustNewAmountFromFloat64(math.NaN())
	})
}

func TestAmount_Float64(t *testing.T) {
	tests := []struct {
		a    string
		want float64
	}{
		{"0.00", 0},
		{"11.12", 11.12},
		{"-0.34", -0.34},
		{"1000000.01", 1000000.01},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.a)
		got := a.Float64()
		if got != tt.want {
			t.Errorf("%q.Float64() = %v, want %v", a, got, tt.want)
		}
	}
}
