// Package handler contains the Echo handlers for the payment HTTP
// surface: starting payments, the hosted checkout page, the provider
// return URL and the Web SDK submission endpoint.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"adyenbridge/internal/adyen"
	"adyenbridge/internal/gateway"
	"adyenbridge/internal/pay"
)

// PaymentStore is the payment persistence surface the handlers need.
// *repository.PaymentRepository implements it.
type PaymentStore interface {
	Create(payment *pay.Payment) error
	FindByID(id string) (*pay.Payment, error)
	Save(payment *pay.Payment) error
}

// Error codes of the payments submission endpoint. Stable: the checkout
// front-end switches on them.
const (
	ErrCodeNoPaymentID     = "adyen-no-payment-id"
	ErrCodePaymentNotFound = "adyen-payment-not-found"
	ErrCodeNoData          = "adyen-no-data"
	ErrCodeGatewayNotFound = "adyen-gateway-not-found"
	ErrCodeClientNotFound  = "adyen-client-not-found"
	ErrCodeNoPaymentMethod = "adyen-no-payment-method"
	ErrCodePaymentFailed   = "adyen-payment-failed"
)

// GatewayResolver resolves a payment's gateway configuration ID to a
// gateway instance.
type GatewayResolver interface {
	Resolve(configID string) (*gateway.Gateway, bool)
}

// GatewayResolverFunc adapts a function to the GatewayResolver interface.
type GatewayResolverFunc func(configID string) (*gateway.Gateway, bool)

func (f GatewayResolverFunc) Resolve(configID string) (*gateway.Gateway, bool) {
	return f(configID)
}

// PaymentsHandler accepts the payment-method object submitted by the
// Web SDK widget and dispatches a create-payment call for it.
type PaymentsHandler struct {
	payments PaymentStore
	gateways GatewayResolver
	logger   *zap.Logger
}

// NewPaymentsHandler creates a new payments submission handler.
func NewPaymentsHandler(payments PaymentStore, gateways GatewayResolver, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		payments: payments,
		gateways: gateways,
		logger:   logger,
	}
}

type controllerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Handle processes POST /pronamic-pay/v1/payments/:payment_id.
// Validation failures each map to a distinct stable error code; the first
// failure wins.
func (h *PaymentsHandler) Handle(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return c.JSON(http.StatusBadRequest, controllerError{
			Code:    ErrCodeNoPaymentID,
			Message: "No payment ID given in `payment_id` parameter.",
		})
	}

	payment, err := h.payments.FindByID(paymentID)
	if err != nil {
		return c.JSON(http.StatusNotFound, controllerError{
			Code:    ErrCodePaymentNotFound,
			Message: "Could not find payment with ID `" + paymentID + "`.",
			Data:    paymentID,
		})
	}

	var body struct {
		PaymentMethod map[string]interface{} `json:"paymentMethod"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, controllerError{
			Code:    ErrCodeNoData,
			Message: "No state data given in request body.",
		})
	}

	gw, ok := h.gateways.Resolve(payment.ConfigID)
	if !ok {
		return c.JSON(http.StatusInternalServerError, controllerError{
			Code:    ErrCodeGatewayNotFound,
			Message: "Could not find gateway with ID `" + payment.ConfigID + "`.",
			Data:    payment.ConfigID,
		})
	}

	if gw.Client() == nil {
		return c.JSON(http.StatusInternalServerError, controllerError{
			Code:    ErrCodeClientNotFound,
			Message: "Could not find client in gateway with ID `" + payment.ConfigID + "`.",
			Data:    payment.ConfigID,
		})
	}

	methodType, _ := body.PaymentMethod["type"].(string)
	if methodType == "" {
		return c.JSON(http.StatusBadRequest, controllerError{
			Code:    ErrCodeNoPaymentMethod,
			Message: "No payment method given.",
		})
	}

	var method adyen.PaymentMethod

	switch methodType {
	case adyen.MethodTypeSepaDirectDebit:
		iban, _ := body.PaymentMethod["sepa.ibanNumber"].(string)
		owner, _ := body.PaymentMethod["sepa.ownerName"].(string)

		method = adyen.SepaDirectDebitPaymentMethod{
			Type:       methodType,
			IbanNumber: iban,
			OwnerName:  owner,
		}
	case adyen.MethodTypeIDeal:
		issuer, _ := body.PaymentMethod["issuer"].(string)

		method = adyen.IDealPaymentMethod{
			Type:   methodType,
			Issuer: issuer,
		}
	default:
		method = adyen.RawPaymentMethod(body.PaymentMethod)
	}

	response, err := gw.CreatePayment(c.Request().Context(), payment, method)
	if err != nil {
		h.logger.Error("Create payment failed",
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return c.JSON(http.StatusBadGateway, controllerError{
			Code:    ErrCodePaymentFailed,
			Message: "Payment could not be created.",
			Data:    paymentID,
		})
	}

	if len(response.Action) > 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"action": response.Action,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"resultCode": response.ResultCode,
	})
}
