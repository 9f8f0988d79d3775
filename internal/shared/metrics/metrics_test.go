package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGenerationCountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(generationTotal.WithLabelValues(OutcomeFailed))
	ObserveGeneration(OutcomeFailed, 2*time.Second)
	after := testutil.ToFloat64(generationTotal.WithLabelValues(OutcomeFailed))
	if after-before != 1 {
		t.Fatalf("expected failed counter to increase by 1, got %v", after-before)
	}
}

func TestAddTokensSkipsZero(t *testing.T) {
	before := testutil.ToFloat64(llmTokensTotal.WithLabelValues(ModelOverride, "completion"))
	AddTokens(ModelOverride, 10, 0)
	after := testutil.ToFloat64(llmTokensTotal.WithLabelValues(ModelOverride, "completion"))
	if after != before {
		t.Fatalf("expected completion tokens unchanged")
	}
	if got := testutil.ToFloat64(llmTokensTotal.WithLabelValues(ModelOverride, "prompt")); got < 10 {
		t.Fatalf("expected prompt tokens >= 10, got %v", got)
	}
}

func TestModelLabelIsBounded(t *testing.T) {
	tests := []struct {
		model, defaultModel, want string
	}{
		{model: "gpt-4o-mini", defaultModel: "gpt-4o-mini", want: ModelDefault},
		{model: "gpt-4o", defaultModel: "gpt-4o-mini", want: ModelOverride},
		{model: "../../etc/passwd", defaultModel: "gpt-4o-mini", want: ModelOverride},
		{model: "", defaultModel: "gpt-4o-mini", want: ModelOverride},
	}
	for _, tt := range tests {
		if got := ModelLabel(tt.model, tt.defaultModel); got != tt.want {
			t.Fatalf("ModelLabel(%q, %q) = %q, want %q", tt.model, tt.defaultModel, got, tt.want)
		}
	}
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ObserveCompletion("resume", ModelDefault, "ok", 500*time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "resume_ai_llm_calls_total") {
		t.Fatalf("expected llm calls metric in output")
	}
}
