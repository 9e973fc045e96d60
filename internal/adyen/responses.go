package adyen

import (
	"encoding/json"
	"fmt"
)

// Redirect tells the shopper where to go to complete an external step.
type Redirect struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// PaymentResponse is the response of POST /payments.
type PaymentResponse struct {
	PspReference string          `json:"pspReference"`
	ResultCode   string          `json:"resultCode"`
	Redirect     *Redirect       `json:"redirect,omitempty"`
	Action       json.RawMessage `json:"action,omitempty"`
}

// PaymentSessionResponse is the response of POST /paymentSession. The
// session value is an opaque token consumed by the Web SDK widget.
type PaymentSessionResponse struct {
	PaymentSession string `json:"paymentSession"`
}

// PaymentResult is the outcome of a completed external step, returned by
// POST /payments/details and POST /payments/result.
type PaymentResult struct {
	PspReference string `json:"pspReference"`
	ResultCode   string `json:"resultCode"`
}

// Issuer is one issuing bank option of an issuer-based method.
type Issuer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InputDetail describes one input the shopper must provide for a method.
type InputDetail struct {
	Key   string   `json:"key"`
	Type  string   `json:"type"`
	Items []Issuer `json:"items,omitempty"`
}

// PaymentMethodDetails describes one method enabled on the merchant
// account.
type PaymentMethodDetails struct {
	Type    string        `json:"type"`
	Name    string        `json:"name"`
	Details []InputDetail `json:"details,omitempty"`
}

// paymentMethodsResponse is the response of POST /paymentMethods.
type paymentMethodsResponse struct {
	PaymentMethods []PaymentMethodDetails `json:"paymentMethods"`
}

// APIError is an Adyen error response body.
type APIError struct {
	Status    int    `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("adyen: %s (error %s, status %d)", e.Message, e.ErrorCode, e.Status)
}
