package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"adyenbridge/internal/gateway"
	"adyenbridge/internal/handler"
	"adyenbridge/internal/middleware"
	"adyenbridge/internal/pay"
	"adyenbridge/internal/repository"
)

// Setup configures all routes for the Echo server.
func Setup(
	e *echo.Echo,
	db *gorm.DB,
	gw *gateway.Gateway,
	mode pay.Mode,
	logger *zap.Logger,
	payloadDeduper middleware.PayloadDeduper,
) {
	// Global middleware
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())

	payments := repository.NewPaymentRepository(db)

	// A single gateway configuration; the resolver keeps the payments
	// endpoint honest about unknown config IDs.
	gateways := handler.GatewayResolverFunc(func(configID string) (*gateway.Gateway, bool) {
		if configID != "default" {
			return nil, false
		}
		return gw, true
	})

	paymentsHandler := handler.NewPaymentsHandler(payments, gateways, logger)
	flowHandler := handler.NewPaymentFlowHandler(payments, gw, mode, logger)

	// Web SDK submission endpoint
	e.POST("/pronamic-pay/v1/payments/:payment_id", paymentsHandler.Handle)

	// Payment lifecycle
	e.POST("/payments", flowHandler.Start)
	e.GET("/payments/:payment_id/redirect", flowHandler.Checkout)
	e.GET("/payments/:payment_id/return", flowHandler.Return, middleware.PayloadDedup(payloadDeduper))

	// Account queries
	e.GET("/payment-methods", flowHandler.Methods)
	e.GET("/issuers", flowHandler.Issuers)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
