package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
	"github.com/zero-defect-summit/event-registration/ratelimit"
)

const requestIdHeader = "X-Request-Id"

type middlewareFunc func(next http.Handler) http.Handler

func useMiddlewares(r *http.ServeMux, middlewares ...middlewareFunc) http.Handler {
	var s http.Handler
	s = r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestId := uuid.New()
			logger := a.logger.With(slog.String("request-id", requestId.String()))
			ctx := ctxWithLogger(ctxWithRequestId(r.Context(), requestId), logger)
			w.Header().Set(requestIdHeader, requestId.String())

			loggingRW := newLoggingResponseWriter(w)

			// process the request
			next.ServeHTTP(loggingRW, r.WithContext(ctx))

			logger.InfoContext(ctx,
				"Access log",
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			logger := a.getLoggerOrBaseLogger(ctx)

			var e Error

			var requestErr *openapi3filter.RequestError
			var secErr *openapi3filter.SecurityRequirementsError
			if errors.As(err, &requestErr) {
				e = Error{
					Message: err.Error(),
					Code:    InputValidationError,
				}
			} else if errors.As(err, &secErr) {
				e = Error{
					Message: err.Error(),
					Code:    AuthError,
				}
			} else if opts.StatusCode == http.StatusNotFound {
				e = Error{
					Message: "Route not found",
					Code:    NotFound,
				}
			} else {
				e = Error{
					Message: err.Error(),
					Code:    InternalError,
				}
			}
			logger.Warn("request failed openapi validation", slog.String("error", err.Error()), slog.Int("status-code", opts.StatusCode))

			writeJSON(w, logger, opts.StatusCode, e)
		},
	})
}

func (a *API) corsMiddleware() middlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case LOCAL:
		serverCors = cors.AllowAll()
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins: a.settings.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Razorpay-Signature", adminKeyHeader},
			ExposedHeaders: []string{requestIdHeader},
			MaxAge:         300,
		})
	}

	return serverCors.Handler
}

func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.getLoggerOrBaseLogger(r.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	writeError(w, logger, http.StatusBadRequest, InputValidationError, "Invalid body")
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.getLoggerOrBaseLogger(r.Context())
	logger.Error("Failed to write response", slog.String("error", err.Error()))

	writeError(w, logger, http.StatusInternalServerError, InternalError, "Internal server error")
}

// bodyLimitMiddleware caps request bodies before validation reads them.
func (a *API) bodyLimitMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware only counts registration submissions.
func (a *API) rateLimitMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/registration" {
				next.ServeHTTP(w, r)
				return
			}

			logger := a.getLoggerOrBaseLogger(r.Context())
			clientKey := clientIP(r)

			err := a.limiter.Allow(clientKey)
			if errors.Is(err, ratelimit.ErrRateLimited) {
				logger.Warn("Registration rate limit exceeded", slog.String("client", clientKey))
				writeError(w, logger, http.StatusTooManyRequests, RateLimited, "Too many registration attempts. Please try again later.")
				return
			} else if err != nil {
				logger.Error("Rate limiter failed", slog.String("error", err.Error()))
				writeError(w, logger, http.StatusInternalServerError, InternalError, "Registration failed. Please try again or contact support if the problem persists.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the proxy headers, then the connection's address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
