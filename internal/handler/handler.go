package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"mini-shop/internal/middleware"
	"mini-shop/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already sent, so an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(data)
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("error", code).
		Str("message", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service error onto its HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, r, http.StatusConflict, validationErr.Code, validationErr.Error(), logger)
	case errors.Is(err, model.ErrInvalidSortKey):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidSortKey, err.Error(), logger)
	case errors.As(err, &domainErr):
		writeError(w, r, http.StatusNotFound, domainErr.Code, domainErr.Message, logger)
	default:
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}

// pathID parses an integer route parameter.
func pathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// decodeAndValidate decodes a JSON body into dst and validates its struct tags.
// It writes the error response itself and reports whether decoding succeeded.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst interface{}, logger zerolog.Logger) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}

	if err := v.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, formatValidationErrors(validationErrors), logger)
			return false
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal validation error", logger)
		return false
	}

	return true
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Field()))
		default:
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(details, "; ")
}
