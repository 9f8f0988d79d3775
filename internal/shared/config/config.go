package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName    = "Resume AI Backend"
	AppVersion = "1.0.0"

	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Config holds application configuration. It is built once at start and never mutated.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string

	OpenAIAPIKey  string
	LLMModel      string
	LLMProvider   string
	OpenAIBaseURL string
	OpenAITimeout time.Duration

	TracingEnabled  bool
	TracingEndpoint string
	TraceSampleRate float64

	ShutdownTimeout time.Duration
}

// HasCredential reports whether an OpenAI API key was configured.
func (c Config) HasCredential() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPENAI_MODEL", DefaultModel)
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("OPENAI_BASE_URL", DefaultBaseURL)
	v.SetDefault("OPENAI_TIMEOUT_SECONDS", 120)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_SAMPLE_RATE", 1.0)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:            getString(v, "PORT", "8080"),
		Env:             normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:        getString(v, "LOG_LEVEL", "info"),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		LLMModel:        getString(v, "OPENAI_MODEL", DefaultModel),
		LLMProvider:     normalizeProvider(v.GetString("LLM_PROVIDER")),
		OpenAIBaseURL:   strings.TrimRight(getString(v, "OPENAI_BASE_URL", DefaultBaseURL), "/"),
		OpenAITimeout:   seconds(v.GetInt("OPENAI_TIMEOUT_SECONDS"), 120),
		TracingEnabled:  v.GetBool("OTEL_ENABLED"),
		TracingEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TraceSampleRate: v.GetFloat64("OTEL_SAMPLE_RATE"),
		ShutdownTimeout: seconds(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"), 10),
	}
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already present in the environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func getString(v *viper.Viper, key, def string) string {
	if val := strings.TrimSpace(v.GetString(key)); val != "" {
		return val
	}
	return def
}

func seconds(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "eino":
		return "eino"
	default:
		return "openai"
	}
}
