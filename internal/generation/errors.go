package generation

import "errors"

// ErrServiceUnavailable indicates no provider credential is configured on the server.
var ErrServiceUnavailable = errors.New("OPENAI_API_KEY not set on server")

// UpstreamError wraps any failure of a completion call.
type UpstreamError struct {
	// Step is the generation step that failed ("resume" or "cover_letter").
	Step string
	Err  error
}

func (e *UpstreamError) Error() string {
	return "OpenAI error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
