package api

import (
	"context"
	"log/slog"
)

func (a *API) GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error) {
	return GetHealth200JSONResponse{
		Status:  "OK",
		Message: "Server is running",
	}, nil
}

// GetReady reports whether the registration store answers.
func (a *API) GetReady(ctx context.Context, request GetReadyRequestObject) (GetReadyResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	err := a.db.Ping(ctx)
	if err != nil {
		logger.Error("Readiness check failed", slog.String("error", err.Error()))

		return GetReady503JSONResponse{
			Status:  "UNAVAILABLE",
			Message: "Database is not reachable",
		}, nil
	}

	return GetReady200JSONResponse{
		Status:  "OK",
		Message: "Database is reachable",
	}, nil
}
