package dto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/proposedesk/internal/domain"
)

// StatusClientClosedRequest is used when the client went away mid-request.
const StatusClientClosedRequest = 499

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Account errors
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusUnauthorized, "INVALID_TOKEN", "invalid authentication token"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, "ACCOUNT_INACTIVE", message

	// View errors
	case errors.Is(err, domain.ErrUnknownView):
		return http.StatusNotFound, "VIEW_NOT_FOUND", message
	case errors.Is(err, domain.ErrStaleRequest):
		return http.StatusConflict, "STALE_REQUEST", message

	// Validation errors
	case errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidAssignee),
		errors.Is(err, domain.ErrUnknownColumn),
		errors.Is(err, domain.ErrNoFilters),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrExportTooLarge):
		return http.StatusUnprocessableEntity, "EXPORT_TOO_LARGE", message

	// Upstream errors. A timeout is also an ErrUpstream, so it goes first.
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "upstream did not answer in time"
	case errors.Is(err, domain.ErrProposeNotFound):
		return http.StatusNotFound, "PROPOSE_NOT_FOUND", message
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", message
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "NOTIFICATION_NOT_FOUND", message
	case errors.Is(err, domain.ErrUpstreamAuth):
		slog.Error("upstream rejected service credentials", "error", err)
		return http.StatusBadGateway, "UPSTREAM_AUTH", "upstream rejected service credentials"
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "UPSTREAM_ERROR", message
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "REQUEST_CANCELED", "request canceled"

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
