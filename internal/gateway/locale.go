package gateway

import (
	"strings"

	"adyenbridge/internal/pay"
)

// paymentLocale returns the customer locale, falling back to the
// configured default.
func paymentLocale(payment *pay.Payment, defaultLocale string) string {
	if payment.Customer != nil && payment.Customer.Locale != "" {
		return payment.Customer.Locale
	}
	return defaultLocale
}

// countryCode derives a 2-letter country code for a payment: the billing
// address country when set, otherwise the region subtag of the locale.
func countryCode(payment *pay.Payment, locale string) string {
	if payment.BillingAddress != nil && payment.BillingAddress.CountryCode != "" {
		return payment.BillingAddress.CountryCode
	}
	return localeRegion(locale)
}

// localeRegion extracts the uppercased first two characters of the region
// segment of a locale like "nl_NL" or "en-GB". Locales without a region
// yield "".
func localeRegion(locale string) string {
	parts := strings.Split(strings.ReplaceAll(locale, "-", "_"), "_")
	if len(parts) < 2 || len(parts[1]) < 2 {
		return ""
	}
	return strings.ToUpper(parts[1][:2])
}
