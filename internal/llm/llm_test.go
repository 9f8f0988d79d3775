package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type stubCompleter struct {
	calls int
	out   Completion
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	s.calls++
	return s.out, s.err
}

func TestReady(t *testing.T) {
	tests := []struct {
		name string
		c    Completer
		want bool
	}{
		{name: "nil", c: nil, want: false},
		{name: "unconfigured", c: Unconfigured{}, want: false},
		{name: "unconfigured pointer", c: &Unconfigured{}, want: false},
		{name: "real", c: &stubCompleter{}, want: true},
		{name: "instrumented real", c: &Instrumented{Next: &stubCompleter{}}, want: true},
		{name: "instrumented unconfigured", c: &Instrumented{Next: Unconfigured{}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ready(tt.c); got != tt.want {
				t.Fatalf("Ready() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnconfiguredReturnsErrNotConfigured(t *testing.T) {
	_, err := Unconfigured{}.Complete(context.Background(), CompletionRequest{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestInstrumentSkipsUnconfigured(t *testing.T) {
	c := Instrument(Unconfigured{}, "openai", "m")
	if _, ok := c.(Unconfigured); !ok {
		t.Fatalf("expected Unconfigured to be returned unwrapped, got %T", c)
	}
}

func TestInstrumentedPassesThroughResultAndError(t *testing.T) {
	stub := &stubCompleter{out: Completion{Content: "hello", Usage: &Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}}}
	c := Instrument(stub, "openai", "m")

	out, err := c.Complete(context.Background(), CompletionRequest{Kind: "resume", Model: "m"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.Content != "hello" {
		t.Fatalf("unexpected content %q", out.Content)
	}

	wantErr := errors.New("upstream down")
	stub.err = wantErr
	if _, err := c.Complete(context.Background(), CompletionRequest{Kind: "resume", Model: "m"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", stub.calls)
	}
}

func TestInstrumentedBoundsModelLabel(t *testing.T) {
	stub := &stubCompleter{out: Completion{Content: "ok", Usage: &Usage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2}}}
	c := Instrument(stub, "openai", "gpt-4o-mini")

	for i := 0; i < 25; i++ {
		stub.err = nil
		if i%2 == 1 {
			stub.err = errors.New("upstream down")
		}
		_, _ = c.Complete(context.Background(), CompletionRequest{Kind: "resume", Model: fmt.Sprintf("caller-model-%d", i)})
	}
	stub.err = nil
	_, _ = c.Complete(context.Background(), CompletionRequest{Kind: "resume", Model: "gpt-4o-mini"})

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	allowed := map[string]bool{"default": true, "override": true}
	checked := 0
	for _, mf := range families {
		switch mf.GetName() {
		case "resume_ai_llm_calls_total", "resume_ai_llm_call_duration_seconds", "resume_ai_llm_tokens_total":
		default:
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() != "model" {
					continue
				}
				checked++
				if !allowed[lp.GetValue()] {
					t.Fatalf("%s has unbounded model label %q", mf.GetName(), lp.GetValue())
				}
			}
		}
	}
	if checked == 0 {
		t.Fatalf("expected llm metrics with a model label to be registered")
	}
}
