package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/zero-defect-summit/event-registration/razorpay"
	"github.com/zero-defect-summit/event-registration/registration"
)

type WebhookResponse struct {
	Received bool `json:"received"`
}

// razorpayWebhookMiddleware serves the gateway webhook ahead of request
// validation, because the signature covers the raw body bytes.
func (a *API) razorpayWebhookMiddleware(pattern string) middlewareFunc {
	server := http.NewServeMux()

	server.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logger := a.getLoggerOrBaseLogger(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read razorpay webhook body", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		reg, err := registration.ConfirmRegistrationPayment(ctx, payload, r.Header.Get(razorpay.SignatureHeader), a.db, a.paymentVerifier)
		if err != nil {
			var rzpErr *razorpay.Error
			var registrationErr *registration.Error
			if errors.As(err, &rzpErr) {
				switch rzpErr.Reason {
				case razorpay.REASON_NOT_CONFIGURED:
					logger.Error("Razorpay webhook secret not configured")
					writeError(w, logger, http.StatusInternalServerError, ConfigurationError, "Configuration error")
					return
				case razorpay.REASON_INVALID_SIGNATURE:
					logger.Warn("Invalid webhook signature", slog.String("client", clientIP(r)))
					writeError(w, logger, http.StatusUnauthorized, AuthError, "Invalid signature")
					return
				case razorpay.REASON_NOT_PAYMENT_CAPTURED_EVENT:
					logger.Info("Ignoring razorpay webhook event", slog.String("reason", rzpErr.Message))
					writeJSON(w, logger, http.StatusOK, WebhookResponse{Received: true})
					return
				case razorpay.REASON_MALFORMED_EVENT:
					// A redelivery carries the same bytes, so do not ask for one.
					logger.Error("Malformed razorpay webhook event", slog.String("error", err.Error()))
					writeJSON(w, logger, http.StatusOK, WebhookResponse{Received: true})
					return
				}
			} else if errors.As(err, &registrationErr) {
				switch registrationErr.Reason {
				case registration.REASON_INVALID_FIELD:
					logger.Error("Captured payment has invalid attendee details",
						slog.String("field", registrationErr.Field),
						slog.String("error", registrationErr.Message),
					)
					writeJSON(w, logger, http.StatusOK, WebhookResponse{Received: true})
					return
				case registration.REASON_PAYMENT_ALREADY_RECORDED:
					logger.Info("Payment already recorded", slog.String("error", err.Error()))
					writeJSON(w, logger, http.StatusOK, WebhookResponse{Received: true})
					return
				}
			}

			logger.Error("Failed to confirm registration payment", slog.String("error", err.Error()))
			writeError(w, logger, http.StatusInternalServerError, InternalError, "Webhook processing failed")
			return
		}

		logger.Info("Registration saved after payment",
			slog.String("id", reg.ID.String()),
			slog.String("email", reg.Email),
			slog.String("payment-id", *reg.PaymentID),
		)

		err = registration.SendRegistrationConfirmationEmail(ctx, a.emailSender, a.settings.EmailFromAddress, reg, a.settings.Workshop)
		if err != nil {
			// The attendee is registered either way.
			logger.Error("failed to send confirmation email", slog.String("error", err.Error()), slog.String("email", reg.Email))
		}

		writeJSON(w, logger, http.StatusOK, WebhookResponse{Received: true})
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, matchedPath := server.Handler(r)

			if matchedPath == "" {
				next.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
