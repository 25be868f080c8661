package siampay

import (
	"errors"
	"fmt"
)

// APIError represents an error payload returned by the SiamPay API, i.e.
// any response body whose object discriminator is "error".
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes returned by the API. Codes outside this set still surface as
// an *APIError carrying the original code and message.
const (
	ErrorCodeAuthenticationFailure = "authentication_failure"
	ErrorCodeNotFound              = "not_found"
	ErrorCodeUsedToken             = "used_token"
	ErrorCodeInvalidCard           = "invalid_card"
	ErrorCodeBadRequest            = "bad_request"
)

// Static configuration and usage errors, raised locally before any I/O.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrSecretKeyRequired = errors.New("secret key is not set")
	ErrPublicKeyRequired = errors.New("public key is not set")
	ErrFieldNotFound     = errors.New("field not found")
	ErrIDRequired        = errors.New("record has no id")
	ErrLocationRequired  = errors.New("record has no location")
	ErrUnexpectedObject  = errors.New("unexpected object type in response")
)

// IsNotFound checks if the error is a not-found API error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsAuthenticationFailure checks if the error is an authentication failure.
func IsAuthenticationFailure(err error) bool {
	return hasCode(err, ErrorCodeAuthenticationFailure)
}

// IsInvalidCard checks if the error reports an invalid card.
func IsInvalidCard(err error) bool {
	return hasCode(err, ErrorCodeInvalidCard)
}

// IsUsedToken checks if the error reports an already-consumed token.
func IsUsedToken(err error) bool {
	return hasCode(err, ErrorCodeUsedToken)
}

// IsBadRequest checks if the error is a bad-request API error.
func IsBadRequest(err error) bool {
	return hasCode(err, ErrorCodeBadRequest)
}

func hasCode(err error, code string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}
