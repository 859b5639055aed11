package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zero-defect-summit/event-registration/ptr"
	"github.com/zero-defect-summit/event-registration/registration"
)

const maxRequestBodyBytes = 65536

const registrationFailedMessage = "Registration failed. Please try again or contact support if the problem persists."

func apiRegistrationRequestToInput(body RegistrationRequest) registration.RegistrationInput {
	return registration.RegistrationInput{
		Name:       ptr.Deref(body.Name, ""),
		Email:      ptr.Deref(body.Email, ""),
		Mobile:     ptr.Deref(body.Mobile, ""),
		Company:    ptr.Deref(body.Company, ""),
		Department: body.Department,
	}
}

func (a *API) PostRegistration(ctx context.Context, request PostRegistrationRequestObject) (PostRegistrationResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.Warn("Nil body for registration")

		return PostRegistration400JSONResponse{
			Code:    InputValidationError,
			Message: "Must specify a body",
		}, nil
	}

	reg, err := registration.AttemptRegistration(ctx, apiRegistrationRequestToInput(*request.Body), request.Body.OrderId, a.db)
	if err != nil {
		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_INVALID_FIELD:
				logger.Info("Registration failed validation", slog.String("field", registrationErr.Field))

				return PostRegistration400JSONResponse{
					Code:    InputValidationError,
					Message: registrationErr.Message,
				}, nil
			case registration.REASON_REGISTRATION_ALREADY_EXISTS:
				logger.Warn("Duplicate registration attempt", slog.String("email", registration.NormalizeEmail(ptr.Deref(request.Body.Email, ""))))

				return PostRegistration409JSONResponse{
					Code:    AlreadyExists,
					Message: "A registration with this email already exists. Please contact support if you need assistance.",
				}, nil
			}
		}

		logger.Error("Error saving registration", slog.String("error", err.Error()))

		return PostRegistration500JSONResponse{
			Code:    InternalError,
			Message: registrationFailedMessage,
		}, nil
	}

	logger.Info("Registration saved",
		slog.String("id", reg.ID.String()),
		slog.String("email", reg.Email),
		slog.String("payment-status", string(reg.PaymentStatus)),
	)

	return PostRegistration200JSONResponse{
		Success: true,
		Message: "Registration saved successfully",
		Id:      reg.ID,
	}, nil
}
