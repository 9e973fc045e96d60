// Package gateway orchestrates payment processing against Adyen: it
// selects the request flow per payment method, builds provider requests
// from the generic payment, and reconciles provider results back into
// canonical payment statuses.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"adyenbridge/internal/adyen"
	"adyenbridge/internal/pay"
)

// SDKVersion is the Web SDK version loaded by the hosted checkout page.
//
// https://docs.adyen.com/developers/checkout/web-sdk/release-notes-web-sdk
const SDKVersion = "1.9.2"

// Payment metadata keys written by this gateway. Consumers treat the
// values as opaque strings.
const (
	MetaSDKVersion     = "adyen_sdk_version"
	MetaPaymentSession = "adyen_payment_session"
)

// Client is the Adyen API surface the gateway needs. *adyen.Client
// implements it; tests substitute fakes.
type Client interface {
	CreatePayment(ctx context.Context, request *adyen.PaymentRequest) (*adyen.PaymentResponse, error)
	CreatePaymentSession(ctx context.Context, request *adyen.PaymentSessionRequest) (*adyen.PaymentSessionResponse, error)
	GetPaymentDetails(ctx context.Context, payload string) (*adyen.PaymentResult, error)
	GetPaymentResult(ctx context.Context, payload string) (*adyen.PaymentResult, error)
	GetPaymentMethods(ctx context.Context) (map[string]adyen.PaymentMethodDetails, error)
	GetIssuers(ctx context.Context, methodType string) ([]adyen.Issuer, error)
}

// Config carries the host-side settings the gateway needs. Locale and
// origin come from explicit configuration instead of ambient globals.
type Config struct {
	MerchantAccount string
	// OriginURL is the origin the Web SDK widget runs on.
	OriginURL string
	// PublicURL is the externally reachable base URL of this service,
	// used to build the hosted-checkout action URL.
	PublicURL string
	// DefaultLocale is used when the payment has no customer locale.
	DefaultLocale string
	// DefaultCountry is used when neither billing address nor locale
	// yield a country code.
	DefaultCountry string
}

// Gateway bridges generic payments to the Adyen Checkout API.
type Gateway struct {
	client Client
	cfg    Config
	logger *zap.Logger
}

// New creates a gateway.
func New(client Client, cfg Config, logger *zap.Logger) *Gateway {
	return &Gateway{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Client returns the underlying API client, or nil when the gateway was
// built without one.
func (g *Gateway) Client() Client {
	return g.client
}

// SupportedMethods lists the generic payment methods this gateway can
// process.
func SupportedMethods() []pay.Method {
	return []pay.Method{
		pay.MethodBancontact,
		pay.MethodCreditCard,
		pay.MethodDirectDebit,
		pay.MethodGiropay,
		pay.MethodIDeal,
		pay.MethodMaestro,
		pay.MethodSofort,
	}
}

// Start begins processing a payment. iDEAL and Sofort use the direct API
// with an immediate bank redirect; every other method gets a hosted Web
// SDK session whose opaque token is stored as payment metadata. The
// payment's transaction ID and action URL are set from the provider
// response.
func (g *Gateway) Start(ctx context.Context, payment *pay.Payment) error {
	amount := adyen.TransformAmount(payment.TotalAmount)

	// Leap of faith for unknown payment methods: unmapped values pass
	// through to Adyen unchanged.
	methodType := adyen.TransformMethod(payment.Method)

	locale := paymentLocale(payment, g.cfg.DefaultLocale)

	countryCode := countryCode(payment, locale)
	if countryCode == "" {
		countryCode = g.cfg.DefaultCountry
	}

	switch payment.Method {
	case pay.MethodIDeal, pay.MethodSofort:
		var method adyen.PaymentMethod = adyen.GenericPaymentMethod{Type: methodType}

		if payment.Method == pay.MethodIDeal {
			method = adyen.IDealPaymentMethod{
				Type:   methodType,
				Issuer: payment.Issuer,
			}
		}

		request := adyen.NewPaymentRequest(amount, g.cfg.MerchantAccount, payment.ID, payment.ReturnURL, method)
		request.CountryCode = countryCode

		Transform(payment, &request.CheckoutRequest)

		response, err := g.client.CreatePayment(ctx, request)
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		payment.TransactionID = response.PspReference

		if response.Redirect != nil {
			payment.ActionURL = response.Redirect.URL
		}

	default:
		request := adyen.NewPaymentSessionRequest(amount, g.cfg.MerchantAccount, payment.ID, payment.ReturnURL, countryCode)

		Transform(payment, &request.CheckoutRequest)

		request.Origin = g.cfg.OriginURL
		request.SDKVersion = SDKVersion

		if methodType != "" {
			request.AllowedPaymentMethods = []string{methodType}
		}

		response, err := g.client.CreatePaymentSession(ctx, request)
		if err != nil {
			return fmt.Errorf("create payment session: %w", err)
		}

		payment.ActionURL = g.checkoutURL(payment.ID)

		payment.SetMeta(MetaSDKVersion, SDKVersion)
		payment.SetMeta(MetaPaymentSession, response.PaymentSession)
	}

	return nil
}

// checkoutURL is the action URL that sends the shopper back into this
// service's hosted checkout page.
func (g *Gateway) checkoutURL(paymentID string) string {
	return strings.TrimRight(g.cfg.PublicURL, "/") + "/payments/" + url.PathEscape(paymentID) + "/redirect"
}

// CheckoutPage describes the hosted Web SDK checkout to render.
type CheckoutPage struct {
	// ScriptURL is the SDK asset to load, varying by mode and version.
	ScriptURL string
	// PaymentSession is the opaque session token for the widget.
	PaymentSession string
	// Context is the SDK environment, "test" or "live".
	Context string
}

// PaymentRedirect prepares the hosted checkout page for a payment. It
// returns ok == false when the session metadata is absent, a benign
// "not at this stage" condition rather than an error.
func (g *Gateway) PaymentRedirect(payment *pay.Payment) (*CheckoutPage, bool) {
	sdkVersion := payment.Meta(MetaSDKVersion)
	paymentSession := payment.Meta(MetaPaymentSession)

	if sdkVersion == "" || paymentSession == "" {
		return nil, false
	}

	sdkContext := "live"
	if payment.Mode == pay.ModeTest {
		sdkContext = "test"
	}

	return &CheckoutPage{
		ScriptURL: fmt.Sprintf(
			"https://checkoutshopper-%s.adyen.com/checkoutshopper/assets/js/sdk/checkoutSDK.%s.min.js",
			sdkContext,
			sdkVersion,
		),
		PaymentSession: paymentSession,
		Context:        sdkContext,
	}, true
}

// Outcome is the result of a status reconciliation attempt.
type Outcome int

const (
	// OutcomeNotApplicable means there was nothing to reconcile yet,
	// e.g. the shopper has not returned from the provider.
	OutcomeNotApplicable Outcome = iota
	// OutcomeUpdated means the payment status was set from a mapped
	// provider result.
	OutcomeUpdated
	// OutcomeFailed means the result could not be obtained or mapped;
	// the payment status was set to Failure.
	OutcomeFailed
)

// UpdateStatus reconciles the payment status from the provider once the
// shopper returned. The return-URL query must carry a "payload" parameter;
// without it the call is not applicable and the payment is untouched.
func (g *Gateway) UpdateStatus(ctx context.Context, payment *pay.Payment, query url.Values) (Outcome, error) {
	if !query.Has("payload") {
		return OutcomeNotApplicable, nil
	}

	payload := query.Get("payload")

	var (
		result *adyen.PaymentResult
		err    error
	)

	switch payment.Method {
	case pay.MethodIDeal, pay.MethodSofort:
		result, err = g.client.GetPaymentDetails(ctx, payload)
	default:
		result, err = g.client.GetPaymentResult(ctx, payload)
	}

	if err == nil && result == nil {
		err = errors.New("empty payment result")
	}

	if err != nil {
		payment.Status = pay.StatusFailure
		return OutcomeFailed, fmt.Errorf("payment result for %s: %w", payment.ID, err)
	}

	status, ok := adyen.StatusFromResultCode(result.ResultCode)
	if !ok {
		// Indeterminate results are treated the same as provider call
		// failures, matching the compatibility requirement.
		payment.Status = pay.StatusFailure
		return OutcomeFailed, fmt.Errorf("payment %s: unmapped result code %q", payment.ID, result.ResultCode)
	}

	payment.Status = status

	if result.PspReference != "" {
		payment.TransactionID = result.PspReference
	}

	return OutcomeUpdated, nil
}

// CreatePayment submits a client-chosen payment method for a payment via
// the direct API, used by the payments controller.
func (g *Gateway) CreatePayment(ctx context.Context, payment *pay.Payment, method adyen.PaymentMethod) (*adyen.PaymentResponse, error) {
	amount := adyen.TransformAmount(payment.TotalAmount)

	request := adyen.NewPaymentRequest(amount, g.cfg.MerchantAccount, payment.ID, payment.ReturnURL, method)

	locale := paymentLocale(payment, g.cfg.DefaultLocale)
	request.CountryCode = countryCode(payment, locale)

	Transform(payment, &request.CheckoutRequest)

	response, err := g.client.CreatePayment(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return response, nil
}

// AvailablePaymentMethods lists the generic methods enabled on the
// merchant account. Provider methods without a generic equivalent are
// dropped; duplicates collapse to one entry. On client failure an empty
// list is returned together with the error.
func (g *Gateway) AvailablePaymentMethods(ctx context.Context) ([]pay.Method, error) {
	available := []pay.Method{}

	methods, err := g.client.GetPaymentMethods(ctx)
	if err != nil {
		g.logger.Warn("Failed to fetch payment methods", zap.Error(err))
		return available, err
	}

	seen := make(map[pay.Method]bool)
	for methodType := range methods {
		method, ok := adyen.TransformGatewayMethod(methodType)
		if !ok || seen[method] {
			continue
		}
		seen[method] = true
		available = append(available, method)
	}

	sort.Slice(available, func(i, j int) bool { return available[i] < available[j] })

	return available, nil
}

// IssuerGroup is one group of issuer options.
type IssuerGroup struct {
	Options []adyen.Issuer
}

// Issuers lists the iDEAL issuing banks as a single options group. On
// client failure an empty group list is returned together with the error.
func (g *Gateway) Issuers(ctx context.Context) ([]IssuerGroup, error) {
	groups := []IssuerGroup{}

	methodType := adyen.TransformMethod(pay.MethodIDeal)

	issuers, err := g.client.GetIssuers(ctx, methodType)
	if err != nil {
		g.logger.Warn("Failed to fetch issuers", zap.Error(err))
		return groups, err
	}

	groups = append(groups, IssuerGroup{Options: issuers})

	return groups, nil
}
