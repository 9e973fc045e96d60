package pay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		currency string
		value    float64
		want     int64
	}{
		{"EUR", 10.00, 1000},
		{"EUR", 0.01, 1},
		{"EUR", 99.99, 9999},
		{"USD", 12.34, 1234},
		{"JPY", 500, 500},
		{"ISK", 1250, 1250},
		{"BHD", 1.234, 1234},
		{"KWD", 0.001, 1},
		{"EUR", 0, 0},
	}

	for _, tt := range tests {
		got := NewAmount(tt.currency, tt.value).MinorUnits()
		assert.Equal(t, tt.want, got, "%s %v", tt.currency, tt.value)
	}
}

func TestMinorUnitsRounding(t *testing.T) {
	// Float representation noise must not shift the minor-unit value.
	assert.Equal(t, int64(8299), NewAmount("EUR", 82.99).MinorUnits())
	assert.Equal(t, int64(405), NewAmount("EUR", 4.05).MinorUnits())
}

func TestFromMinorUnitsRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		currency string
		minor    int64
	}{
		{"EUR", 1000},
		{"EUR", 1},
		{"JPY", 500},
		{"BHD", 1234},
	} {
		amount := FromMinorUnits(tt.currency, tt.minor)
		assert.Equal(t, tt.minor, amount.MinorUnits())
	}
}

func TestCurrencyExponent(t *testing.T) {
	assert.Equal(t, 2, CurrencyExponent("EUR"))
	assert.Equal(t, 0, CurrencyExponent("JPY"))
	assert.Equal(t, 3, CurrencyExponent("BHD"))
	assert.Equal(t, 2, CurrencyExponent("XYZ"))
}
