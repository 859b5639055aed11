package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zero-defect-summit/event-registration/registration"
)

func (a *API) PostPaymentCreateOrder(ctx context.Context, request PostPaymentCreateOrderRequestObject) (PostPaymentCreateOrderResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.Warn("Nil body for order creation")

		return PostPaymentCreateOrder400JSONResponse{
			Code:    InputValidationError,
			Message: "Must specify a body",
		}, nil
	}

	order, err := registration.CreatePaymentOrder(ctx, apiRegistrationRequestToInput(*request.Body), a.settings.Workshop, a.orderCreator)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_INVALID_FIELD:
				return PostPaymentCreateOrder400JSONResponse{
					Code:    InputValidationError,
					Message: registrationErr.Message,
				}, nil
			case registration.REASON_PAYMENT_NOT_CONFIGURED:
				logger.Error("Razorpay credentials not configured")

				return PostPaymentCreateOrder500JSONResponse{
					Code:    ConfigurationError,
					Message: "Payment system not configured",
				}, nil
			}
		}

		logger.Error("Razorpay order creation failed", slog.String("error", err.Error()))

		return PostPaymentCreateOrder500JSONResponse{
			Code:    UpstreamError,
			Message: "Failed to create payment order. Please try again.",
		}, nil
	}

	logger.Info("Razorpay order created", slog.String("order-id", order.OrderID))

	return PostPaymentCreateOrder200JSONResponse{
		OrderId:        order.OrderID,
		Amount:         order.Amount.Amount(),
		Currency:       order.Amount.Currency().Code,
		PublishableKey: order.PublishableKey,
	}, nil
}
