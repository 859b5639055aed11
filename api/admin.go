package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/zero-defect-summit/event-registration/registration"
)

const adminKeyHeader = "X-Admin-Key"

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

func registrationToApiRegistration(reg registration.Registration) Registration {
	apiReg := Registration{
		Id:            reg.ID,
		Name:          reg.Name,
		Email:         reg.Email,
		Mobile:        reg.Mobile,
		Company:       reg.Company,
		Department:    reg.Department,
		PaymentId:     reg.PaymentID,
		OrderId:       reg.OrderID,
		PaymentStatus: RegistrationPaymentStatus(reg.PaymentStatus),
		CreatedAt:     reg.CreatedAt,
		UpdatedAt:     reg.UpdatedAt,
	}
	if reg.Amount != nil {
		major := reg.Amount.AsMajorUnits()
		currency := reg.Amount.Currency().Code
		apiReg.Amount = &major
		apiReg.Currency = &currency
	}
	return apiReg
}

func (a *API) isAdmin(given *string) bool {
	return given != nil && *given != "" && subtle.ConstantTimeCompare([]byte(*given), []byte(a.settings.AdminAPIKey)) == 1
}

func (a *API) GetRegistrations(ctx context.Context, request GetRegistrationsRequestObject) (GetRegistrationsResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if a.settings.AdminAPIKey == "" {
		logger.Error("Admin API key not configured")

		return GetRegistrations500JSONResponse{
			Code:    ConfigurationError,
			Message: "Configuration error",
		}, nil
	}
	if !a.isAdmin(request.Params.XAdminKey) {
		logger.Warn("Rejected admin request")

		return GetRegistrations401JSONResponse{
			Code:    AuthError,
			Message: "Invalid admin key",
		}, nil
	}

	limit := defaultListLimit
	if request.Params.Limit != nil {
		userLimit := *request.Params.Limit
		if userLimit < 1 || userLimit > maxListLimit {
			logger.Warn("Limit out of bounds", slog.Int("limit", userLimit))

			return GetRegistrations400JSONResponse{
				Code:    LimitOutOfBounds,
				Message: "Limit must be between 1 and 50",
			}, nil
		}
		limit = userLimit
	}

	result, err := a.db.ListRegistrations(ctx, int32(limit), request.Params.Cursor)
	if err != nil {
		logger.Error("Failed to list registrations", slog.String("error", err.Error()))

		var registrationErr *registration.Error
		if errors.As(err, &registrationErr) {
			switch registrationErr.Reason {
			case registration.REASON_INVALID_CURSOR:
				return GetRegistrations400JSONResponse{
					Code:    InvalidCursor,
					Message: "Cursor is invalid",
				}, nil
			}
		}

		return GetRegistrations500JSONResponse{
			Code:    InternalError,
			Message: "Failed to get registrations",
		}, nil
	}

	respRegs := make([]Registration, 0, len(result.Data))
	for _, v := range result.Data {
		respRegs = append(respRegs, registrationToApiRegistration(v))
	}

	return GetRegistrations200JSONResponse{
		Data:        respRegs,
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}, nil
}
