package dto

import "net/http"

// Error codes shared with the domain layer plus HTTP-only ones
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Posting-rule violations are 422s; double-posting is a conflict; a failing
// model service is a retryable upstream error.
var ErrorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_INPUT":  http.StatusBadRequest,
	"INVALID_STATE":  http.StatusUnprocessableEntity,

	"UNMATCHED_REFERENCE": http.StatusUnprocessableEntity,
	"ALREADY_POSTED":      http.StatusConflict,
	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"UNKNOWN_PRODUCT":     http.StatusUnprocessableEntity,
	"UNBALANCED_ENTRY":    http.StatusInternalServerError,

	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_ORDER_NUMBER": http.StatusBadRequest,
	"INVALID_CUSTOMER":     http.StatusBadRequest,

	"AI_SERVICE_UNAVAILABLE": http.StatusBadGateway,
	"AI_DISABLED":            http.StatusServiceUnavailable,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
