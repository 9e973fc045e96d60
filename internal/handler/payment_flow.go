package handler

import (
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"adyenbridge/internal/gateway"
	"adyenbridge/internal/middleware"
	"adyenbridge/internal/pay"
)

// PaymentFlowHandler serves the host side of a payment's lifecycle:
// starting it, rendering the hosted checkout and handling the provider
// return URL.
type PaymentFlowHandler struct {
	payments PaymentStore
	gateway  *gateway.Gateway
	mode     pay.Mode
	logger   *zap.Logger
}

// NewPaymentFlowHandler creates a new payment flow handler.
func NewPaymentFlowHandler(payments PaymentStore, gw *gateway.Gateway, mode pay.Mode, logger *zap.Logger) *PaymentFlowHandler {
	return &PaymentFlowHandler{
		payments: payments,
		gateway:  gw,
		mode:     mode,
		logger:   logger,
	}
}

// StartPaymentRequest is the body of POST /payments. Amounts are decimal
// values except line amounts, which are minor units like on the Adyen
// wire.
type StartPaymentRequest struct {
	Amount struct {
		Currency string  `json:"currency"`
		Value    float64 `json:"value"`
	} `json:"amount"`
	Method      string `json:"method"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnUrl"`
	Issuer      string `json:"issuer,omitempty"`

	Customer *struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Gender    string `json:"gender"`
		Locale    string `json:"locale"`
		IP        string `json:"ip"`
		Phone     string `json:"phone"`
		UserID    string `json:"userId"`
	} `json:"customer,omitempty"`

	BillingAddress  *addressBody `json:"billingAddress,omitempty"`
	ShippingAddress *addressBody `json:"shippingAddress,omitempty"`

	Lines []lineBody `json:"lines,omitempty"`
}

type addressBody struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

type lineBody struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	Quantity           int64   `json:"quantity"`
	AmountIncludingTax int64   `json:"amountIncludingTax"`
	AmountExcludingTax int64   `json:"amountExcludingTax"`
	TaxAmount          *int64  `json:"taxAmount"`
	TaxPercentage      float64 `json:"taxPercentage"`
}

// Start handles POST /payments: creates a payment record and begins
// provider processing.
func (h *PaymentFlowHandler) Start(c echo.Context) error {
	var req StartPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if req.Amount.Currency == "" || req.ReturnURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount.currency and returnUrl are required"})
	}

	payment := h.buildPayment(&req)

	ctx := c.Request().Context()

	if err := h.gateway.Start(ctx, payment); err != nil {
		h.logger.Error("Payment start failed",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)

		payment.Status = pay.StatusFailure
		if saveErr := h.payments.Create(payment); saveErr != nil {
			h.logger.Error("Failed to store failed payment", zap.Error(saveErr))
		}

		return c.JSON(http.StatusBadGateway, map[string]string{"error": "payment could not be started"})
	}

	payment.Status = pay.StatusOpen

	if err := h.payments.Create(payment); err != nil {
		h.logger.Error("Failed to store payment", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "payment could not be stored"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":            payment.ID,
		"status":        payment.Status,
		"transactionId": payment.TransactionID,
		"redirectUrl":   payment.ActionURL,
	})
}

func (h *PaymentFlowHandler) buildPayment(req *StartPaymentRequest) *pay.Payment {
	payment := &pay.Payment{
		ID:          uuid.NewString(),
		Description: req.Description,
		Method:      pay.Method(req.Method),
		TotalAmount: pay.NewAmount(req.Amount.Currency, req.Amount.Value),
		ReturnURL:   req.ReturnURL,
		Issuer:      req.Issuer,
		ConfigID:    "default",
		Mode:        h.mode,
	}

	if req.Customer != nil {
		customer := &pay.Customer{
			Locale:    req.Customer.Locale,
			IPAddress: req.Customer.IP,
			Phone:     req.Customer.Phone,
			UserID:    req.Customer.UserID,
			Gender:    pay.Gender(req.Customer.Gender),
		}
		if req.Customer.FirstName != "" || req.Customer.LastName != "" {
			customer.Name = &pay.Name{
				FirstName: req.Customer.FirstName,
				LastName:  req.Customer.LastName,
			}
		}
		payment.Customer = customer
	}

	payment.BillingAddress = req.BillingAddress.toDomain()
	payment.ShippingAddress = req.ShippingAddress.toDomain()

	if req.Lines != nil {
		lines := make([]pay.Line, 0, len(req.Lines))
		for _, line := range req.Lines {
			lines = append(lines, line.toDomain(req.Amount.Currency))
		}
		payment.Lines = lines
	}

	return payment
}

func (a *addressBody) toDomain() *pay.Address {
	if a == nil {
		return nil
	}
	return &pay.Address{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		City:        a.City,
		PostalCode:  a.PostalCode,
		CountryCode: a.Country,
	}
}

func (l *lineBody) toDomain(currency string) pay.Line {
	line := pay.Line{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Quantity:    l.Quantity,
		TotalAmount: pay.TaxedAmount{
			IncludingTax:  pay.FromMinorUnits(currency, l.AmountIncludingTax),
			ExcludingTax:  pay.FromMinorUnits(currency, l.AmountExcludingTax),
			TaxPercentage: l.TaxPercentage,
		},
	}

	if l.TaxAmount != nil {
		taxAmount := pay.FromMinorUnits(currency, *l.TaxAmount)
		line.TotalAmount.TaxAmount = &taxAmount
		line.UnitPrice.TaxAmount = &taxAmount
	}

	return line
}

// Checkout handles GET /payments/:payment_id/redirect: it renders the Web
// SDK checkout page for payments carrying a session. Payments without
// session metadata are not at this stage; the shopper is sent on to the
// return URL.
func (h *PaymentFlowHandler) Checkout(c echo.Context) error {
	payment, err := h.payments.FindByID(c.Param("payment_id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Payment not found")
	}

	page, ok := h.gateway.PaymentRedirect(payment)
	if !ok {
		return c.Redirect(http.StatusFound, payment.ReturnURL)
	}

	noCache(c)

	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)

	return checkoutTemplate.Execute(c.Response().Writer, map[string]interface{}{
		"ScriptURL":      page.ScriptURL,
		"Context":        page.Context,
		"PaymentSession": page.PaymentSession,
		"PaymentsURL":    "/pronamic-pay/v1/payments/" + payment.ID,
	})
}

// Return handles GET /payments/:payment_id/return: the shopper comes back
// from the provider and, when a payload is present, the status is
// reconciled before redirecting to the host return URL.
func (h *PaymentFlowHandler) Return(c echo.Context) error {
	payment, err := h.payments.FindByID(c.Param("payment_id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Payment not found")
	}

	// A terminal payment or a replayed payload needs no reconciliation.
	if payment.Status.IsTerminal() || middleware.IsDuplicatePayload(c) {
		return c.Redirect(http.StatusFound, payment.ReturnURL)
	}

	outcome, err := h.gateway.UpdateStatus(c.Request().Context(), payment, c.QueryParams())

	switch outcome {
	case gateway.OutcomeNotApplicable:
		// First page load before the provider redirect returned.
	case gateway.OutcomeFailed:
		h.logger.Warn("Status reconciliation failed",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)
		fallthrough
	case gateway.OutcomeUpdated:
		if err := h.payments.Save(payment); err != nil {
			h.logger.Error("Failed to save payment status", zap.Error(err))
		}
	}

	return c.Redirect(http.StatusFound, payment.ReturnURL)
}

// Methods handles GET /payment-methods: the generic methods enabled on
// the merchant account.
func (h *PaymentFlowHandler) Methods(c echo.Context) error {
	methods, err := h.gateway.AvailablePaymentMethods(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"paymentMethods": methods,
			"error":          err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"paymentMethods": methods,
	})
}

// Issuers handles GET /issuers: the iDEAL issuer options.
func (h *PaymentFlowHandler) Issuers(c echo.Context) error {
	groups, err := h.gateway.Issuers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"groups": groups,
			"error":  err.Error(),
		})
	}

	out := make([]map[string]interface{}, 0, len(groups))
	for _, group := range groups {
		out = append(out, map[string]interface{}{"options": group.Options})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"groups": out,
	})
}

func noCache(c echo.Context) {
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

var checkoutTemplate = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Checkout</title>
    <style>
        body { font-family: -apple-system, Helvetica, Arial, sans-serif; background: #f2f2f2; margin: 0; padding: 20px; }
        .box { background: #fff; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); padding: 24px; max-width: 480px; margin: 40px auto; }
    </style>
</head>
<body>
    <div class="box">
        <div id="adyen-checkout"></div>
    </div>
    <script src="{{.ScriptURL}}"></script>
    <script>
        var checkout = chckt.checkout(
            {{.PaymentSession}},
            '#adyen-checkout',
            {
                context: {{.Context}},
                beforeComplete: function (node, paymentData) {
                    var request = new XMLHttpRequest();
                    request.open('POST', {{.PaymentsURL}});
                    request.setRequestHeader('Content-Type', 'application/json');
                    request.send(JSON.stringify(paymentData));
                    return false;
                }
            }
        );
    </script>
</body>
</html>
`))
