package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adyenbridge/internal/pay"
)

func TestLocaleRegion(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"nl_NL", "NL"},
		{"en-GB", "GB"},
		{"de_DE_formal", "DE"},
		{"fr_be", "BE"},
		{"nl", ""},
		{"", ""},
		{"x_y", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, localeRegion(tt.locale), "locale %q", tt.locale)
	}
}

func TestCountryCode(t *testing.T) {
	withAddress := &pay.Payment{BillingAddress: &pay.Address{CountryCode: "BE"}}
	assert.Equal(t, "BE", countryCode(withAddress, "nl_NL"))

	withoutAddress := &pay.Payment{}
	assert.Equal(t, "NL", countryCode(withoutAddress, "nl_NL"))

	emptyCountry := &pay.Payment{BillingAddress: &pay.Address{}}
	assert.Equal(t, "NL", countryCode(emptyCountry, "nl_NL"))
}

func TestPaymentLocale(t *testing.T) {
	withLocale := &pay.Payment{Customer: &pay.Customer{Locale: "nl_NL"}}
	assert.Equal(t, "nl_NL", paymentLocale(withLocale, "en_US"))

	withoutLocale := &pay.Payment{Customer: &pay.Customer{}}
	assert.Equal(t, "en_US", paymentLocale(withoutLocale, "en_US"))

	assert.Equal(t, "en_US", paymentLocale(&pay.Payment{}, "en_US"))
}
