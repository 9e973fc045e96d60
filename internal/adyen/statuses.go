// Package adyen contains the Adyen Checkout API encodings: request and
// response types, the value transforms between the generic payment domain
// and Adyen's wire format, and the HTTP client.
package adyen

import "adyenbridge/internal/pay"

// Result codes returned by the Adyen Checkout API.
//
// https://docs.adyen.com/developers/checkout/payment-result-codes
const (
	ResultAuthorized      = "Authorised"
	ResultCancelled       = "Cancelled"
	ResultError           = "Error"
	ResultPending         = "Pending"
	ResultReceived        = "Received"
	ResultRedirectShopper = "redirectShopper"
	ResultRefused         = "Refused"
)

// StatusFromResultCode maps an Adyen result code to the canonical payment
// status. Unknown codes return ok == false: the status cannot be determined
// from them, which is not by itself an error.
func StatusFromResultCode(code string) (pay.Status, bool) {
	switch code {
	case ResultPending, ResultReceived, ResultRedirectShopper:
		return pay.StatusOpen, true
	case ResultCancelled:
		return pay.StatusCancelled, true
	case ResultError, ResultRefused:
		return pay.StatusFailure, true
	case ResultAuthorized:
		return pay.StatusSuccess, true
	}
	return "", false
}
