package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/weatherrecap/weatherrecap/internal/domain"
	"github.com/weatherrecap/weatherrecap/internal/http/dto"
	"github.com/weatherrecap/weatherrecap/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Default().Error("Failed to encode response", "error", err)
	}
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors to a status and the client-facing body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		logger.FromContext(r.Context()).Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	status := statusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("Request failed", "kind", appErr.Kind.String(), "error", err)
	}
	writeJSON(w, status, dto.ErrorResponse{Error: appErr.Message, Details: appErr.Details})
}

func writeValidationErrors(w http.ResponseWriter, errs []dto.ValidationError) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: dto.ToResponse(errs)})
}

// pathID parses a numeric URL parameter, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name, Details: raw})
		return 0, false
	}
	return id, true
}
