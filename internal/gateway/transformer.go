package gateway

import (
	"fmt"

	"adyenbridge/internal/adyen"
	"adyenbridge/internal/pay"
)

// Transform populates the shared checkout-request fields from a generic
// payment: shopper data, addresses and line items. It only reads from the
// payment. Optional fields are set only when present on the payment.
func Transform(payment *pay.Payment, request *adyen.CheckoutRequest) {
	request.Channel = adyen.ChannelWeb

	request.ShopperStatement = payment.Description

	if customer := payment.Customer; customer != nil {
		request.ShopperIP = customer.IPAddress
		request.ShopperLocale = customer.Locale
		request.ShopperReference = customer.UserID
		request.TelephoneNumber = customer.Phone

		if customer.Name != nil {
			request.ShopperName = &adyen.Name{
				FirstName: customer.Name.FirstName,
				LastName:  customer.Name.LastName,
				Gender:    adyen.TransformGender(customer.Gender),
			}
		}

		if customer.BirthDate != nil {
			request.DateOfBirth = customer.BirthDate.Format("2006-01-02")
		}
	}

	if payment.BillingAddress != nil {
		request.BillingAddress = adyen.TransformAddress(*payment.BillingAddress)
	}

	if payment.ShippingAddress != nil {
		request.DeliveryAddress = adyen.TransformAddress(*payment.ShippingAddress)
	}

	if payment.Lines != nil {
		request.LineItems = transformLines(payment.Lines)
	}
}

// transformLines builds the Adyen line items. The description falls back
// from the explicit description to a non-empty line name to a synthesized
// "Item N" label with the 1-based position.
func transformLines(lines []pay.Line) []adyen.LineItem {
	items := make([]adyen.LineItem, 0, len(lines))

	for i, line := range lines {
		description := ""

		switch {
		case line.Description != nil:
			description = *line.Description
		case line.Name != "":
			description = line.Name
		default:
			description = fmt.Sprintf("Item %d", i+1)
		}

		item := adyen.LineItem{
			ID:                 line.ID,
			Description:        description,
			Quantity:           line.Quantity,
			AmountIncludingTax: line.TotalAmount.IncludingTax.MinorUnits(),
			AmountExcludingTax: line.TotalAmount.ExcludingTax.MinorUnits(),
		}

		// Tax fields only when the line carries a unit-level tax amount.
		if line.UnitPrice.TaxAmount != nil && line.TotalAmount.TaxAmount != nil {
			taxAmount := line.TotalAmount.TaxAmount.MinorUnits()
			taxPercentage := int64(line.TotalAmount.TaxPercentage * 100)

			item.TaxAmount = &taxAmount
			item.TaxPercentage = &taxPercentage
		}

		items = append(items, item)
	}

	return items
}
