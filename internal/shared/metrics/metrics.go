package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_ai"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "total",
			Help:      "Generation requests by outcome",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "End-to-end generation duration in seconds",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	llmCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Completion calls by kind, model and outcome",
		},
		[]string{"kind", "model", "outcome"},
	)

	llmCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Completion call duration in seconds",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind", "model"},
	)

	llmTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Tokens reported by the provider",
		},
		[]string{"model", "type"},
	)
)

// Generation outcomes.
const (
	OutcomeCompleted    = "completed"
	OutcomeFailed       = "failed"
	OutcomeUnconfigured = "unconfigured"
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveGeneration records a finished generation.
func ObserveGeneration(outcome string, d time.Duration) {
	generationTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeUnconfigured {
		generationDuration.Observe(d.Seconds())
	}
}

// Model label values. Caller-supplied model names are never used as labels.
const (
	ModelDefault  = "default"
	ModelOverride = "override"
)

// ModelLabel maps a model name onto the bounded model label set.
func ModelLabel(model, defaultModel string) string {
	if model == defaultModel {
		return ModelDefault
	}
	return ModelOverride
}

// ObserveCompletion records a single provider call. model must be a ModelLabel value.
func ObserveCompletion(kind, model, outcome string, d time.Duration) {
	llmCallsTotal.WithLabelValues(kind, model, outcome).Inc()
	llmCallDuration.WithLabelValues(kind, model).Observe(d.Seconds())
}

// AddTokens records provider token usage. model must be a ModelLabel value.
func AddTokens(model string, prompt, completion int) {
	if prompt > 0 {
		llmTokensTotal.WithLabelValues(model, "prompt").Add(float64(prompt))
	}
	if completion > 0 {
		llmTokensTotal.WithLabelValues(model, "completion").Add(float64(completion))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
