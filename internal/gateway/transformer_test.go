package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adyenbridge/internal/adyen"
	"adyenbridge/internal/pay"
)

func strptr(s string) *string { return &s }

func TestTransformShopperFields(t *testing.T) {
	birthDate := time.Date(1985, 3, 24, 0, 0, 0, 0, time.UTC)

	payment := &pay.Payment{
		Description: "Order #1234",
		Customer: &pay.Customer{
			IPAddress: "127.0.0.1",
			Locale:    "nl_NL",
			UserID:    "user-42",
			Phone:     "+31612345678",
			Name:      &pay.Name{FirstName: "Jan", LastName: "Jansen"},
			BirthDate: &birthDate,
			Gender:    pay.GenderMale,
		},
		BillingAddress: &pay.Address{
			Street:      "Hoofdstraat",
			HouseNumber: "1",
			City:        "Drachten",
			PostalCode:  "9203 KA",
			CountryCode: "NL",
		},
		ShippingAddress: &pay.Address{City: "Leeuwarden", CountryCode: "NL"},
	}

	var request adyen.CheckoutRequest
	Transform(payment, &request)

	assert.Equal(t, adyen.ChannelWeb, request.Channel)
	assert.Equal(t, "Order #1234", request.ShopperStatement)
	assert.Equal(t, "127.0.0.1", request.ShopperIP)
	assert.Equal(t, "nl_NL", request.ShopperLocale)
	assert.Equal(t, "user-42", request.ShopperReference)
	assert.Equal(t, "+31612345678", request.TelephoneNumber)
	assert.Equal(t, "1985-03-24", request.DateOfBirth)

	require.NotNil(t, request.ShopperName)
	assert.Equal(t, adyen.Name{FirstName: "Jan", LastName: "Jansen", Gender: "MALE"}, *request.ShopperName)

	require.NotNil(t, request.BillingAddress)
	assert.Equal(t, "Drachten", request.BillingAddress.City)
	require.NotNil(t, request.DeliveryAddress)
	assert.Equal(t, "Leeuwarden", request.DeliveryAddress.City)
}

func TestTransformWithoutCustomer(t *testing.T) {
	var request adyen.CheckoutRequest
	Transform(&pay.Payment{}, &request)

	assert.Equal(t, adyen.ChannelWeb, request.Channel)
	assert.Nil(t, request.ShopperName)
	assert.Nil(t, request.BillingAddress)
	assert.Nil(t, request.DeliveryAddress)
	assert.Nil(t, request.LineItems)
	assert.Empty(t, request.DateOfBirth)
}

func TestTransformLineDescriptionFallback(t *testing.T) {
	payment := &pay.Payment{
		Lines: []pay.Line{
			{Description: strptr("Explicit description"), Name: "ignored"},
			{Name: "Widget"},
			{},
		},
	}

	var request adyen.CheckoutRequest
	Transform(payment, &request)

	require.Len(t, request.LineItems, 3)
	assert.Equal(t, "Explicit description", request.LineItems[0].Description)
	assert.Equal(t, "Widget", request.LineItems[1].Description)
	assert.Equal(t, "Item 3", request.LineItems[2].Description)
}

func TestTransformLineEmptyDescriptionIsKept(t *testing.T) {
	// An explicitly empty description is still an explicit description.
	payment := &pay.Payment{
		Lines: []pay.Line{{Description: strptr(""), Name: "Widget"}},
	}

	var request adyen.CheckoutRequest
	Transform(payment, &request)

	require.Len(t, request.LineItems, 1)
	assert.Equal(t, "", request.LineItems[0].Description)
}

func TestTransformLineAmountsAndTax(t *testing.T) {
	tax := pay.NewAmount("EUR", 4.20)

	payment := &pay.Payment{
		Lines: []pay.Line{
			{
				ID:       "sku-1",
				Name:     "Widget",
				Quantity: 2,
				UnitPrice: pay.TaxedAmount{
					IncludingTax: pay.NewAmount("EUR", 12.10),
					ExcludingTax: pay.NewAmount("EUR", 10.00),
					TaxAmount:    &tax,
				},
				TotalAmount: pay.TaxedAmount{
					IncludingTax:  pay.NewAmount("EUR", 24.20),
					ExcludingTax:  pay.NewAmount("EUR", 20.00),
					TaxAmount:     &tax,
					TaxPercentage: 21,
				},
			},
		},
	}

	var request adyen.CheckoutRequest
	Transform(payment, &request)

	require.Len(t, request.LineItems, 1)
	item := request.LineItems[0]

	assert.Equal(t, "sku-1", item.ID)
	assert.Equal(t, int64(2), item.Quantity)
	assert.Equal(t, int64(2420), item.AmountIncludingTax)
	assert.Equal(t, int64(2000), item.AmountExcludingTax)

	require.NotNil(t, item.TaxAmount)
	assert.Equal(t, int64(420), *item.TaxAmount)
	require.NotNil(t, item.TaxPercentage)
	assert.Equal(t, int64(2100), *item.TaxPercentage)
}

func TestTransformLineWithoutTax(t *testing.T) {
	payment := &pay.Payment{
		Lines: []pay.Line{
			{
				Name:     "Widget",
				Quantity: 1,
				TotalAmount: pay.TaxedAmount{
					IncludingTax: pay.NewAmount("EUR", 10.00),
					ExcludingTax: pay.NewAmount("EUR", 10.00),
				},
			},
		},
	}

	var request adyen.CheckoutRequest
	Transform(payment, &request)

	require.Len(t, request.LineItems, 1)
	assert.Nil(t, request.LineItems[0].TaxAmount)
	assert.Nil(t, request.LineItems[0].TaxPercentage)
}
