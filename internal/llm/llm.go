package llm

import (
	"context"
	"errors"
)

// Chat roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest is a single chat completion call.
type CompletionRequest struct {
	// Kind labels the call for logs and metrics ("resume", "cover_letter").
	Kind        string
	Model       string
	Messages    []Message
	Temperature float32
}

// Usage is the token accounting reported by the provider, if any.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the content of the first choice returned by the provider.
type Completion struct {
	Content string
	Model   string
	Usage   *Usage
}

// Completer abstracts chat completion providers.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

var (
	// ErrNotConfigured is returned when no provider credential was configured.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrNoChoices is returned when the provider answered without any choice.
	ErrNoChoices = errors.New("completion response has no choices")
	// ErrEmptyContent is returned when the first choice carries no message content.
	ErrEmptyContent = errors.New("completion choice has no message content")
)

// Unconfigured stands in for a provider when no credential is available.
type Unconfigured struct{}

// Complete returns ErrNotConfigured without doing any I/O.
func (Unconfigured) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	_ = ctx
	_ = req
	return Completion{}, ErrNotConfigured
}

// Ready reports whether c can issue real completion calls.
func Ready(c Completer) bool {
	if c == nil {
		return false
	}
	if r, ok := c.(interface{ Ready() bool }); ok {
		return r.Ready()
	}
	switch c.(type) {
	case Unconfigured, *Unconfigured:
		return false
	}
	return true
}
