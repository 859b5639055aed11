//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml ../spec/api.yaml
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/zero-defect-summit/event-registration/events"
	"github.com/zero-defect-summit/event-registration/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "LOCAL":
		return LOCAL, nil
	case "PROD":
		return PROD, nil
	default:
		return LOCAL, fmt.Errorf("unknown environment %q", s)
	}
}

func (e Environment) String() string {
	switch e {
	case PROD:
		return "PROD"
	default:
		return "LOCAL"
	}
}

type DB interface {
	registration.Repository
	Ping(ctx context.Context) error
}

type RateLimiter interface {
	Allow(clientKey string) error
}

type Settings struct {
	Workshop events.Workshop
	// AllowedOrigins only applies in PROD; LOCAL allows every origin.
	AllowedOrigins   []string
	AdminAPIKey      string
	EmailFromAddress string
}

var _ StrictServerInterface = (*API)(nil)

type API struct {
	db              DB
	logger          *slog.Logger
	env             Environment
	orderCreator    registration.OrderCreator
	paymentVerifier registration.PaymentVerifier
	emailSender     email.Sender
	limiter         RateLimiter
	settings        Settings
}

func NewAPI(
	db DB,
	logger *slog.Logger,
	env Environment,
	orderCreator registration.OrderCreator,
	paymentVerifier registration.PaymentVerifier,
	emailSender email.Sender,
	limiter RateLimiter,
	settings Settings,
) *API {
	return &API{
		db:              db,
		logger:          logger,
		env:             env,
		orderCreator:    orderCreator,
		paymentVerifier: paymentVerifier,
		emailSender:     emailSender,
		limiter:         limiter,
		settings:        settings,
	}
}

const webhookRoute = "POST /payment/webhook"

// Handler builds the full HTTP surface with its middleware chain.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()

	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: a.requestErrorHandler,
	})

	// Applied in order, so the last one listed runs first.
	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.rateLimitMiddleware(),
		a.bodyLimitMiddleware(),
		a.razorpayWebhookMiddleware(webhookRoute),
		a.corsMiddleware(),
		a.loggingMiddleware(),
	), nil
}
