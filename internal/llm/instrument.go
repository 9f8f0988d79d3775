package llm

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"resume-ai-backend/internal/shared/metrics"
	"resume-ai-backend/internal/shared/telemetry"
)

// Instrumented wraps a Completer with a span, metrics and a usage log line per call.
type Instrumented struct {
	Next         Completer
	Provider     string
	DefaultModel string
}

// Instrument wraps next unless it is not ready, in which case it is returned as is.
func Instrument(next Completer, provider, defaultModel string) Completer {
	if !Ready(next) {
		return next
	}
	return &Instrumented{Next: next, Provider: provider, DefaultModel: defaultModel}
}

// Ready reports whether the wrapped completer is ready.
func (i *Instrumented) Ready() bool {
	return Ready(i.Next)
}

// Complete forwards to the wrapped completer.
func (i *Instrumented) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	ctx, span := telemetry.StartSpan(ctx, "llm.complete", trace.WithAttributes(
		attribute.String("llm.provider", i.Provider),
		attribute.String("llm.kind", req.Kind),
		attribute.String("llm.model", req.Model),
		attribute.Float64("llm.temperature", float64(req.Temperature)),
	))
	defer span.End()

	modelLabel := metrics.ModelLabel(req.Model, i.DefaultModel)
	start := time.Now()
	out, err := i.Next.Complete(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.ObserveCompletion(req.Kind, modelLabel, "error", elapsed)
		return Completion{}, err
	}

	metrics.ObserveCompletion(req.Kind, modelLabel, "ok", elapsed)
	fields := map[string]any{
		"provider":    i.Provider,
		"kind":        req.Kind,
		"model":       req.Model,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
		"trace_id":    telemetry.TraceID(ctx),
	}
	if out.Usage != nil {
		metrics.AddTokens(modelLabel, out.Usage.PromptTokens, out.Usage.CompletionTokens)
		span.SetAttributes(
			attribute.Int("llm.prompt_tokens", out.Usage.PromptTokens),
			attribute.Int("llm.completion_tokens", out.Usage.CompletionTokens),
		)
		fields["prompt_tokens"] = out.Usage.PromptTokens
		fields["completion_tokens"] = out.Usage.CompletionTokens
		fields["total_tokens"] = out.Usage.TotalTokens
	}
	telemetry.Info("llm.response", fields)
	return out, nil
}

var _ Completer = (*Instrumented)(nil)
