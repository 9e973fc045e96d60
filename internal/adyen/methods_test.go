package adyen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adyenbridge/internal/pay"
)

func TestTransformMethod(t *testing.T) {
	tests := []struct {
		method pay.Method
		want   string
	}{
		{pay.MethodBancontact, "bcmc"},
		{pay.MethodCreditCard, "scheme"},
		{pay.MethodDirectDebit, "sepadirectdebit"},
		{pay.MethodGiropay, "giropay"},
		{pay.MethodIDeal, "ideal"},
		{pay.MethodMaestro, "maestro"},
		{pay.MethodSofort, "directEbanking"},
		// Unknown methods pass through unchanged.
		{pay.Method("alipay"), "alipay"},
		{pay.Method(""), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TransformMethod(tt.method), "method %q", tt.method)
	}
}

func TestTransformGatewayMethod(t *testing.T) {
	tests := []struct {
		methodType string
		want       pay.Method
		ok         bool
	}{
		{"bcmc", pay.MethodBancontact, true},
		{"scheme", pay.MethodCreditCard, true},
		{"sepadirectdebit", pay.MethodDirectDebit, true},
		{"giropay", pay.MethodGiropay, true},
		{"ideal", pay.MethodIDeal, true},
		{"maestro", pay.MethodMaestro, true},
		{"directEbanking", pay.MethodSofort, true},
		{"unknown_method_x", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		method, ok := TransformGatewayMethod(tt.methodType)
		assert.Equal(t, tt.ok, ok, "type %q", tt.methodType)
		assert.Equal(t, tt.want, method, "type %q", tt.methodType)
	}
}

func TestMethodMappingRoundTrip(t *testing.T) {
	// Every mapped Adyen type must transform back to the generic method it
	// came from.
	for _, method := range []pay.Method{
		pay.MethodBancontact,
		pay.MethodCreditCard,
		pay.MethodDirectDebit,
		pay.MethodGiropay,
		pay.MethodIDeal,
		pay.MethodMaestro,
		pay.MethodSofort,
	} {
		back, ok := TransformGatewayMethod(TransformMethod(method))
		assert.True(t, ok, "method %q", method)
		assert.Equal(t, method, back)
	}
}
