package adyen

// Channel values accepted by the Checkout API.
const ChannelWeb = "Web"

// Amount is a monetary value in minor units.
type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

// Address is an Adyen address object.
type Address struct {
	Street            string `json:"street"`
	HouseNumberOrName string `json:"houseNumberOrName"`
	City              string `json:"city"`
	PostalCode        string `json:"postalCode"`
	Country           string `json:"country"`
}

// Name is an Adyen shopper name. Gender is always one of MALE, FEMALE or
// UNKNOWN, never empty.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
}

// LineItem is one entry of the lineItems array. Tax fields are pointers so
// lines without tax omit them entirely.
type LineItem struct {
	ID                 string `json:"id,omitempty"`
	Description        string `json:"description"`
	Quantity           int64  `json:"quantity"`
	AmountIncludingTax int64  `json:"amountIncludingTax"`
	AmountExcludingTax int64  `json:"amountExcludingTax"`
	TaxAmount          *int64 `json:"taxAmount,omitempty"`
	// TaxPercentage is in minor units of a percent: 21% is sent as 2100.
	TaxPercentage *int64 `json:"taxPercentage,omitempty"`
}

// PaymentMethod is a provider payment method object as sent in a payment
// request. The concrete type determines which method-specific fields go on
// the wire.
type PaymentMethod interface {
	// MethodType returns the Adyen method type tag (e.g. "ideal").
	MethodType() string
}

// GenericPaymentMethod carries only a method type.
type GenericPaymentMethod struct {
	Type string `json:"type"`
}

func (m GenericPaymentMethod) MethodType() string { return m.Type }

// IDealPaymentMethod is an iDEAL method with the shopper's chosen issuer.
type IDealPaymentMethod struct {
	Type   string `json:"type"`
	Issuer string `json:"issuer,omitempty"`
}

func (m IDealPaymentMethod) MethodType() string { return m.Type }

// SepaDirectDebitPaymentMethod carries the SEPA mandate fields under
// Adyen's dotted key convention.
type SepaDirectDebitPaymentMethod struct {
	Type       string `json:"type"`
	IbanNumber string `json:"sepa.ibanNumber"`
	OwnerName  string `json:"sepa.ownerName"`
}

func (m SepaDirectDebitPaymentMethod) MethodType() string { return m.Type }

// RawPaymentMethod is a client-submitted method object forwarded verbatim,
// used for method types without dedicated handling.
type RawPaymentMethod map[string]interface{}

// MethodType returns the "type" entry of the raw object, or "".
func (m RawPaymentMethod) MethodType() string {
	if t, ok := m["type"].(string); ok {
		return t
	}
	return ""
}
