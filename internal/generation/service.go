package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"resume-ai-backend/internal/llm"
	"resume-ai-backend/internal/shared/metrics"
	"resume-ai-backend/internal/shared/telemetry"
)

// DefaultTone is used when the request omits tone or sends null.
const DefaultTone = "Confident"

// Request is one generation job.
type Request struct {
	ResumeText string
	JobText    string
	Tone       string
	ModelName  string
}

// Result holds both generated documents.
type Result struct {
	TailoredResume string
	CoverLetter    string
}

// Service generates a tailored resume and a cover letter. Its completer and
// default model are fixed at construction.
type Service struct {
	llm          llm.Completer
	defaultModel string
}

// NewService constructs a Service. A nil completer is treated as unconfigured.
func NewService(completer llm.Completer, defaultModel string) *Service {
	if completer == nil {
		completer = llm.Unconfigured{}
	}
	return &Service{llm: completer, defaultModel: defaultModel}
}

// Generate runs the resume call, then the cover letter call. Either both
// succeed or an error is returned and nothing is produced.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if !llm.Ready(s.llm) {
		metrics.ObserveGeneration(metrics.OutcomeUnconfigured, 0)
		telemetry.Error("generation.unconfigured", map[string]any{
			"trace_id": telemetry.TraceID(ctx),
		})
		return Result{}, ErrServiceUnavailable
	}

	model := s.resolveModel(req.ModelName)
	tone := req.Tone

	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "generation.generate")
	defer span.End()

	resume, err := s.complete(ctx, kindResume, llm.CompletionRequest{
		Kind:        kindResume,
		Model:       model,
		Messages:    resumeMessages(req.JobText, req.ResumeText),
		Temperature: resumeTemperature,
	})
	if err != nil {
		return Result{}, s.fail(ctx, err, model, start)
	}

	letter, err := s.complete(ctx, kindCoverLetter, llm.CompletionRequest{
		Kind:        kindCoverLetter,
		Model:       model,
		Messages:    coverLetterMessages(tone, req.JobText, req.ResumeText),
		Temperature: coverLetterTemperature,
	})
	if err != nil {
		return Result{}, s.fail(ctx, err, model, start)
	}

	elapsed := time.Since(start)
	metrics.ObserveGeneration(metrics.OutcomeCompleted, elapsed)
	telemetry.Info("generation.completed", map[string]any{
		"model":        model,
		"tone":         tone,
		"resume_chars": len(resume),
		"letter_chars": len(letter),
		"duration_ms":  float64(elapsed.Microseconds()) / 1000.0,
		"trace_id":     telemetry.TraceID(ctx),
	})

	return Result{TailoredResume: resume, CoverLetter: letter}, nil
}

func (s *Service) complete(ctx context.Context, step string, req llm.CompletionRequest) (string, error) {
	out, err := s.llm.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", ErrServiceUnavailable
		}
		return "", &UpstreamError{Step: step, Err: err}
	}
	return strings.TrimSpace(out.Content), nil
}

func (s *Service) fail(ctx context.Context, err error, model string, start time.Time) error {
	elapsed := time.Since(start)
	fields := map[string]any{
		"model":       model,
		"error":       err,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
		"trace_id":    telemetry.TraceID(ctx),
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		fields["step"] = upstream.Step
	}
	metrics.ObserveGeneration(metrics.OutcomeFailed, elapsed)
	telemetry.Error("generation.failed", fields)
	return err
}

func (s *Service) resolveModel(requested string) string {
	if requested != "" {
		return requested
	}
	return s.defaultModel
}
