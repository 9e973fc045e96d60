package pay

import "math"

// currencyExponents maps ISO 4217 currency codes to the number of decimal
// digits in their minor unit. Currencies not listed use the default of 2.
var currencyExponents = map[string]int{
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
	"CLP": 0,
	"ISK": 0,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
}

// CurrencyExponent returns the minor-unit exponent for a currency code.
func CurrencyExponent(currency string) int {
	if exp, ok := currencyExponents[currency]; ok {
		return exp
	}
	return 2
}

// Amount is a monetary value in decimal units of a currency
// (e.g. 10.00 for ten euros).
type Amount struct {
	Currency string
	Value    float64
}

// NewAmount creates an amount from a decimal value.
func NewAmount(currency string, value float64) Amount {
	return Amount{Currency: currency, Value: value}
}

// FromMinorUnits creates an amount from a value in the smallest currency
// unit (e.g. cents for EUR).
func FromMinorUnits(currency string, minor int64) Amount {
	exp := CurrencyExponent(currency)
	return Amount{
		Currency: currency,
		Value:    float64(minor) / math.Pow10(exp),
	}
}

// MinorUnits returns the value in the smallest currency unit.
func (a Amount) MinorUnits() int64 {
	exp := CurrencyExponent(a.Currency)
	return int64(math.Round(a.Value * math.Pow10(exp)))
}

// TaxedAmount is an amount with tax breakdown, used for payment lines.
type TaxedAmount struct {
	IncludingTax Amount
	ExcludingTax Amount
	// TaxAmount is nil when no tax applies to the amount.
	TaxAmount *Amount
	// TaxPercentage is the tax rate in percent (e.g. 21 for 21% VAT).
	TaxPercentage float64
}
