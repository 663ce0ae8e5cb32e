package llm

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable indicates no API credential is configured for the
// selected provider. It is a supported degraded mode, not a caller error:
// the pipeline switches to heuristic analysis when it sees this state.
var ErrServiceUnavailable = errors.New("llm service unavailable: no API key configured")

// UpstreamError indicates the provider was invoked but the call failed,
// either at the transport level or with a non-2xx status. There is no retry
// or further fallback once a call has been dispatched.
type UpstreamError struct {
	Provider   string
	StatusCode int // 0 for transport-level failures
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s API call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an UpstreamError for a non-2xx provider response.
func NewUpstreamError(provider string, status int, body string) *UpstreamError {
	return &UpstreamError{
		Provider:   provider,
		StatusCode: status,
		Err:        fmt.Errorf("%s", body),
	}
}
