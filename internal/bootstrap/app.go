package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/generation"
	"resume-ai-backend/internal/llm"
	einoclient "resume-ai-backend/internal/llm/eino"
	openai "resume-ai-backend/internal/llm/openai"
	"resume-ai-backend/internal/services/health"
	"resume-ai-backend/internal/shared/config"
	"resume-ai-backend/internal/shared/server"
	"resume-ai-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	LLM               llm.Completer
	GenerationService *generation.Service
	GenerationHandler *generation.Handler
	Health            *health.Service
}

// Build wires configuration, provider, service, handler and router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	completer, err := NewCompleter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithCompleter(cfg, completer), nil
}

// BuildWithCompleter wires the app around an existing completer.
func BuildWithCompleter(cfg config.Config, completer llm.Completer) *App {
	svc := generation.NewService(completer, cfg.LLMModel)
	app := &App{
		Config:            cfg,
		LLM:               completer,
		GenerationService: svc,
		GenerationHandler: generation.NewHandler(svc),
		Health:            health.NewService(),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		GenerationHandler: app.GenerationHandler,
		Health:            app.Health,
	})
	return app
}

// NewCompleter returns a ready provider client, or llm.Unconfigured when no
// credential is set. The check happens again at call time.
func NewCompleter(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	if !cfg.HasCredential() {
		telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{
			"provider": cfg.LLMProvider,
		})
		return llm.Unconfigured{}, nil
	}

	switch cfg.LLMProvider {
	case "eino":
		client, err := einoclient.NewClient(ctx, einoclient.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.OpenAITimeout,
		})
		if err != nil {
			return nil, err
		}
		return llm.Instrument(client, "eino", cfg.LLMModel), nil
	case "openai", "":
		client, err := openai.NewClient(cfg.OpenAIAPIKey,
			openai.WithBaseURL(cfg.OpenAIBaseURL),
			openai.WithTimeout(cfg.OpenAITimeout),
		)
		if err != nil {
			return nil, err
		}
		return llm.Instrument(client, "openai", cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
