package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrForbidden     = errors.New("operation not allowed")
	ErrBadRequest    = errors.New("malformed request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternal      = errors.New("internal server error")
	ErrConflict      = errors.New("resource conflict")
	ErrConfiguration = errors.New("server configuration error")
	ErrUpstream      = errors.New("upstream service failure")
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes
func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewForbiddenError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusForbidden, err: errors.New(message)}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: errors.New(message)}
}

// NewConfigurationError reports a missing or invalid runtime secret. The cause
// is logged server-side, never exposed to the client.
func NewConfigurationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfiguration,
		Cause:      cause,
	}
}

// NewUpstreamError reports a failure in an external collaborator (image store,
// mail relay). Always a 500 with a generic message.
func NewUpstreamError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUpstream,
		Details:    fmt.Sprintf("%s request failed", service),
		Cause:      cause,
	}
}

func NewBadRequestErrorWithField(message, field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New(message),
		Field:      field,
	}
}

func NewCORSError(origin string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrForbidden,
		Details:    fmt.Sprintf("Origin '%s' is not allowed by CORS policy", origin),
	}
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
