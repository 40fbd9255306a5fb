package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As chains.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Session Errors

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_SESSION_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_SESSION_TOKEN_EXPIRED,
		Message:  "Authentication token has expired",
	}
}

// Calendar Errors

func ErrCalendarItemNotFound(itemID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_CALENDAR_ITEM_NOT_FOUND,
		Message:  "Calendar item not found",
	}.WithDetail("item_id", itemID)
}

func ErrInvalidDate(value string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CALENDAR_INVALID_DATE,
		Message:  "Date must be formatted as YYYY-MM-DD",
	}.WithDetail("date", value)
}

func ErrStaleSnapshot() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_CALENDAR_STALE_SNAPSHOT,
		Message:  "Snapshot superseded by a newer local edit",
	}
}

// Upstream API Errors

func ErrUpstreamUnavailable(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_UNAVAILABLE,
		Message:  fmt.Sprintf("Upstream API call failed: %s", service),
	}
}

func ErrUpstreamRejected(service string, status int) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_REJECTED,
		Message:  fmt.Sprintf("Upstream API rejected request: %s", service),
	}.WithDetail("upstream_status", fmt.Sprintf("%d", status))
}

func ErrResyncFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPSTREAM_RESYNC_FAILED,
		Message:  "Failed to resynchronize calendar after write failure",
	}
}
