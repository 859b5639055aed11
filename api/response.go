package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON is for responses written outside the strict handlers.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, statusCode int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to marshal response body", slog.String("error", err.Error()))
		statusCode = http.StatusInternalServerError
		jsonBody = []byte(`{"message": "internal error", "code": "InternalError"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonBody)
}

func writeError(w http.ResponseWriter, logger *slog.Logger, statusCode int, code ErrorCode, message string) {
	writeJSON(w, logger, statusCode, Error{
		Message: message,
		Code:    code,
	})
}
