package errors

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidURL         = "INVALID_URL"
	ErrCodeIDExtractionFailed = "ID_EXTRACTION_FAILED"
	ErrCodeHTTP               = "HTTP_ERROR"
	ErrCodeNetworkFailure     = "NETWORK_FAILURE"
	ErrCodeParse              = "PARSE_ERROR"
	ErrCodeSuperseded         = "SUPERSEDED"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "INVALID_URL", "PARSE_ERROR")
	Message string // Human-readable error message, shown to the user as is
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)

	// UpstreamStatus is the status returned by Lichess for HTTP_ERROR.
	UpstreamStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError with the same code, so callers can test
// errors.Is(err, &AppError{Code: ErrCodeParse}).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidURLError is returned when the input is not a Lichess link.
func NewInvalidURLError() *AppError {
	return &AppError{
		Code:    ErrCodeInvalidURL,
		Message: "Please enter a valid Lichess game URL.",
		Status:  http.StatusBadRequest,
	}
}

// NewIDExtractionError is returned when a Lichess link carries no game id.
func NewIDExtractionError() *AppError {
	return &AppError{
		Code:    ErrCodeIDExtractionFailed,
		Message: "Could not extract game ID from URL.",
		Status:  http.StatusBadRequest,
	}
}

// NewHTTPError reports a non-200 answer from the PGN export endpoint.
// A 404 from upstream is passed through, anything else is a bad gateway.
func NewHTTPError(upstreamStatus int, reason string) *AppError {
	status := http.StatusBadGateway
	if upstreamStatus == http.StatusNotFound {
		status = http.StatusNotFound
	}
	return &AppError{
		Code:           ErrCodeHTTP,
		Message:        fmt.Sprintf("Failed to fetch PGN: %d %s", upstreamStatus, reason),
		Status:         status,
		UpstreamStatus: upstreamStatus,
	}
}

// NewNetworkError reports a fetch that could not complete at all.
func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeNetworkFailure,
		Message: fmt.Sprintf("Error: %v", err),
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// NewParseError reports PGN text the rules engine rejected.
func NewParseError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("Failed to parse PGN: %v", err),
		Status:  http.StatusUnprocessableEntity,
		Err:     err,
	}
}

// NewSupersededError is returned to a submission replaced by a newer one.
func NewSupersededError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeSuperseded,
		Message: "Submission superseded by a newer request.",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

// Code returns the AppError code carried by err, or "" if there is none.
func Code(err error) string {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
