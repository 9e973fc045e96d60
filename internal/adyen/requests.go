package adyen

// CheckoutRequest holds the fields shared by the two request flavors of
// the Checkout API. Optional fields use omitempty so absent values stay
// off the wire.
type CheckoutRequest struct {
	Amount          Amount `json:"amount"`
	MerchantAccount string `json:"merchantAccount"`
	Reference       string `json:"reference"`
	ReturnURL       string `json:"returnUrl"`

	Channel     string `json:"channel,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	ShopperIP        string `json:"shopperIP,omitempty"`
	ShopperLocale    string `json:"shopperLocale,omitempty"`
	ShopperReference string `json:"shopperReference,omitempty"`
	ShopperStatement string `json:"shopperStatement,omitempty"`
	TelephoneNumber  string `json:"telephoneNumber,omitempty"`
	// DateOfBirth is a calendar date in ISO 8601 format (2006-01-02).
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	ShopperName *Name  `json:"shopperName,omitempty"`

	BillingAddress  *Address `json:"billingAddress,omitempty"`
	DeliveryAddress *Address `json:"deliveryAddress,omitempty"`

	LineItems []LineItem `json:"lineItems,omitempty"`
}

// PaymentRequest is a direct-API payment request (POST /payments), used
// for methods that complete synchronously or via a single redirect.
type PaymentRequest struct {
	CheckoutRequest
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// NewPaymentRequest creates a payment request with the required fields.
func NewPaymentRequest(amount Amount, merchantAccount, reference, returnURL string, method PaymentMethod) *PaymentRequest {
	return &PaymentRequest{
		CheckoutRequest: CheckoutRequest{
			Amount:          amount,
			MerchantAccount: merchantAccount,
			Reference:       reference,
			ReturnURL:       returnURL,
		},
		PaymentMethod: method,
	}
}

// PaymentSessionRequest is a hosted-session request (POST /paymentSession),
// used for methods completed by the client-side Web SDK widget.
type PaymentSessionRequest struct {
	CheckoutRequest
	Origin                string   `json:"origin,omitempty"`
	SDKVersion            string   `json:"sdkVersion,omitempty"`
	AllowedPaymentMethods []string `json:"allowedPaymentMethods,omitempty"`
}

// NewPaymentSessionRequest creates a payment session request with the
// required fields.
func NewPaymentSessionRequest(amount Amount, merchantAccount, reference, returnURL, countryCode string) *PaymentSessionRequest {
	return &PaymentSessionRequest{
		CheckoutRequest: CheckoutRequest{
			Amount:          amount,
			MerchantAccount: merchantAccount,
			Reference:       reference,
			ReturnURL:       returnURL,
			CountryCode:     countryCode,
		},
	}
}
