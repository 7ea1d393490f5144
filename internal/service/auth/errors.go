package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors. These form the fixed application
// level failure taxonomy that the HTTP layer maps to status codes, so the
// set must stay in sync with the login handler's switch.
var (
	// ErrInvalidCredentials indicates the email/password pair was rejected
	// by the identity provider.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotConfirmed indicates the account exists but the email
	// address has not been verified yet.
	ErrAccountNotConfirmed = errors.New("user account is not confirmed")

	// ErrUserNotFound indicates no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordChangeRequired indicates the account holds a temporary or
	// expired password and must be reset out-of-band before tokens can be
	// issued.
	ErrPasswordChangeRequired = errors.New("password change required")

	// ErrAuthenticationFailed indicates any other unexpected failure,
	// including network errors and transport timeouts. The original error
	// is preserved by wrapping for diagnostics.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Token verification errors

	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)

// ProviderError carries a vendor error code and message returned by the
// identity provider for failures that do not fall into one of the known
// categories. The code travels as a structured field rather than being
// parsed back out of prose, but Error keeps the documented
// "(Error Code: <code>)" rendering for logs and legacy consumers.
type ProviderError struct {
	Code    string // Vendor error code (e.g., "InvalidParameterException")
	Message string // Vendor error message
	Err     error  // Original error
}

// Error implements the error interface for ProviderError.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (Error Code: %s)", e.Message, e.Code)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
