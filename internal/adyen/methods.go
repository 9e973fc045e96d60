package adyen

import "adyenbridge/internal/pay"

// Adyen payment method type identifiers.
const (
	MethodTypeBancontact      = "bcmc"
	MethodTypeDirectEbanking  = "directEbanking"
	MethodTypeGiropay         = "giropay"
	MethodTypeIDeal           = "ideal"
	MethodTypeMaestro         = "maestro"
	MethodTypeScheme          = "scheme"
	MethodTypeSepaDirectDebit = "sepadirectdebit"
)

// TransformMethod maps a generic payment method to the Adyen method type.
// Unknown methods pass through unchanged, so new generic methods reach
// Adyen as-is instead of being rejected here.
func TransformMethod(method pay.Method) string {
	switch method {
	case pay.MethodBancontact:
		return MethodTypeBancontact
	case pay.MethodCreditCard:
		return MethodTypeScheme
	case pay.MethodDirectDebit:
		return MethodTypeSepaDirectDebit
	case pay.MethodGiropay:
		return MethodTypeGiropay
	case pay.MethodIDeal:
		return MethodTypeIDeal
	case pay.MethodMaestro:
		return MethodTypeMaestro
	case pay.MethodSofort:
		return MethodTypeDirectEbanking
	}
	return string(method)
}

// TransformGatewayMethod maps an Adyen method type back to the generic
// payment method. Method types without a generic equivalent return
// ok == false and are filtered out by callers.
func TransformGatewayMethod(methodType string) (pay.Method, bool) {
	switch methodType {
	case MethodTypeBancontact:
		return pay.MethodBancontact, true
	case MethodTypeScheme:
		return pay.MethodCreditCard, true
	case MethodTypeSepaDirectDebit:
		return pay.MethodDirectDebit, true
	case MethodTypeGiropay:
		return pay.MethodGiropay, true
	case MethodTypeIDeal:
		return pay.MethodIDeal, true
	case MethodTypeMaestro:
		return pay.MethodMaestro, true
	case MethodTypeDirectEbanking:
		return pay.MethodSofort, true
	}
	return "", false
}
