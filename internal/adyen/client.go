package adyen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adyenbridge/internal/pkg/httpclient"
)

// Checkout API base URLs. The live URL carries an account-specific prefix
// and is therefore configured rather than hardcoded.
const testBaseURL = "https://checkout-test.adyen.com/v41"

// Client calls the Adyen Checkout API.
type Client struct {
	http            *httpclient.Client
	baseURL         string
	merchantAccount string
}

// ClientConfig configures an API client.
type ClientConfig struct {
	APIKey          string
	MerchantAccount string
	// Live selects the live environment; LiveBaseURL must then be set to
	// the account-specific checkout URL.
	Live        bool
	LiveBaseURL string
	Timeout     time.Duration
}

// NewClient creates a Checkout API client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	baseURL := testBaseURL
	if cfg.Live {
		baseURL = cfg.LiveBaseURL
	}

	return &Client{
		http: httpclient.New().
			WithTimeout(timeout).
			WithHeader("x-api-key", cfg.APIKey),
		baseURL:         baseURL,
		merchantAccount: cfg.MerchantAccount,
	}
}

// post sends a request to the given API endpoint and decodes the response
// into out. Adyen signals failures with a non-2xx status and a JSON error
// body.
func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	respBody, status, err := c.http.Post(c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("adyen %s: %w", endpoint, err)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: status}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("adyen %s: unexpected HTTP %d: %s", endpoint, status, respBody)
		}
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("adyen %s: decode response: %w", endpoint, err)
	}
	return nil
}

// CreatePayment starts a direct-API payment.
func (c *Client) CreatePayment(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error) {
	var response PaymentResponse
	if err := c.post(ctx, "/payments", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreatePaymentSession starts a hosted Web SDK payment session.
func (c *Client) CreatePaymentSession(ctx context.Context, request *PaymentSessionRequest) (*PaymentSessionResponse, error) {
	var response PaymentSessionResponse
	if err := c.post(ctx, "/paymentSession", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPaymentDetails fetches the result of a direct-API payment after the
// shopper returned from an external step.
func (c *Client) GetPaymentDetails(ctx context.Context, payload string) (*PaymentResult, error) {
	body := map[string]interface{}{
		"details": map[string]string{
			"payload": payload,
		},
	}

	var result PaymentResult
	if err := c.post(ctx, "/payments/details", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPaymentResult fetches the result of a hosted-session payment.
func (c *Client) GetPaymentResult(ctx context.Context, payload string) (*PaymentResult, error) {
	body := map[string]string{
		"payload": payload,
	}

	var result PaymentResult
	if err := c.post(ctx, "/payments/result", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPaymentMethods lists the methods enabled on the merchant account,
// keyed by method type.
func (c *Client) GetPaymentMethods(ctx context.Context) (map[string]PaymentMethodDetails, error) {
	body := map[string]string{
		"merchantAccount": c.merchantAccount,
	}

	var response paymentMethodsResponse
	if err := c.post(ctx, "/paymentMethods", body, &response); err != nil {
		return nil, err
	}

	methods := make(map[string]PaymentMethodDetails, len(response.PaymentMethods))
	for _, method := range response.PaymentMethods {
		methods[method.Type] = method
	}
	return methods, nil
}

// GetIssuers lists the issuing banks of an issuer-based method. The
// Checkout API exposes them as items of the method's "issuer" input detail.
func (c *Client) GetIssuers(ctx context.Context, methodType string) ([]Issuer, error) {
	methods, err := c.GetPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	method, ok := methods[methodType]
	if !ok {
		return nil, fmt.Errorf("adyen: payment method %q not enabled on merchant account", methodType)
	}

	for _, detail := range method.Details {
		if detail.Key == "issuer" {
			return detail.Items, nil
		}
	}
	return nil, nil
}
