package adyen

import "adyenbridge/internal/pay"

// TransformAmount converts a generic amount to the Adyen representation
// in minor units.
func TransformAmount(amount pay.Amount) Amount {
	return Amount{
		Currency: amount.Currency,
		Value:    amount.MinorUnits(),
	}
}

// TransformAddress converts a generic address to the Adyen representation.
func TransformAddress(address pay.Address) *Address {
	return &Address{
		Street:            address.Street,
		HouseNumberOrName: address.HouseNumber,
		City:              address.City,
		PostalCode:        address.PostalCode,
		Country:           address.CountryCode,
	}
}

// TransformGender maps a generic gender to the Adyen gender tag. Anything
// outside the known values becomes the explicit "UNKNOWN" tag rather than
// being omitted.
func TransformGender(gender pay.Gender) string {
	switch gender {
	case pay.GenderFemale:
		return "FEMALE"
	case pay.GenderMale:
		return "MALE"
	}
	return "UNKNOWN"
}
