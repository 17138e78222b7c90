package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by Generator implementations
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate lesson plan")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrProviderUnavailable is returned when the provider cannot be reached or fails server side
	ErrProviderUnavailable = errors.New("language model provider unavailable")

	// ErrRateLimited is returned when the provider rejects the call for quota reasons
	ErrRateLimited = errors.New("language model provider rate limit exceeded")

	// ErrUnauthorized is returned when the provider rejects the API credential
	ErrUnauthorized = errors.New("language model provider rejected credentials")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// FromStatus classifies a provider error by the HTTP status it carried.
// The returned error wraps both the matching sentinel and err.
func FromStatus(status int, err error) error {
	var sentinel error
	switch {
	case status == http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case status >= http.StatusInternalServerError, status == 0:
		sentinel = ErrProviderUnavailable
	default:
		sentinel = ErrGenerationFailed
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
