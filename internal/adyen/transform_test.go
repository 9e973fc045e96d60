package adyen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adyenbridge/internal/pay"
)

func TestTransformAmount(t *testing.T) {
	assert.Equal(t, Amount{Currency: "EUR", Value: 1000}, TransformAmount(pay.NewAmount("EUR", 10.00)))
	assert.Equal(t, Amount{Currency: "JPY", Value: 500}, TransformAmount(pay.NewAmount("JPY", 500)))
}

func TestTransformAddress(t *testing.T) {
	got := TransformAddress(pay.Address{
		Street:      "Burgemeester Wuiteweg",
		HouseNumber: "39b",
		City:        "Drachten",
		PostalCode:  "9203 KA",
		CountryCode: "NL",
	})

	assert.Equal(t, &Address{
		Street:            "Burgemeester Wuiteweg",
		HouseNumberOrName: "39b",
		City:              "Drachten",
		PostalCode:        "9203 KA",
		Country:           "NL",
	}, got)
}

func TestTransformGender(t *testing.T) {
	assert.Equal(t, "FEMALE", TransformGender(pay.GenderFemale))
	assert.Equal(t, "MALE", TransformGender(pay.GenderMale))
	assert.Equal(t, "UNKNOWN", TransformGender(pay.GenderOther))
	assert.Equal(t, "UNKNOWN", TransformGender(pay.Gender("")))
}
