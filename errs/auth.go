package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Authentication & Authorization Errors
var (
	ErrMissingToken       = errors.New("missing access token")
	ErrExpiredToken       = errors.New("expired access token")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrInsufficientRole   = errors.New("insufficient role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "No token provided",
		Field:      "authorization",
	}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Details:    "Access token has expired",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid access token",
		Field:      "authorization",
	}
}

func NewInsufficientRoleError(requiredRole string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInsufficientRole,
		Details:    fmt.Sprintf("Insufficient role. Required: %s", requiredRole),
		Field:      "authorization",
	}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
	}
}

// Authentication & Authorization Error Type Checkers
func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsExpiredTokenError(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsInsufficientRoleError(err error) bool {
	return errors.Is(err, ErrInsufficientRole)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
