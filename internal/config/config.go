// Package config loads environment-driven settings for the bidforge CLI.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Supported LLM providers for the document structuring call.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Config holds all configuration values.
type Config struct {
	// LLM provider for document structuring
	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaHost      string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Pacing scales the artificial per-stage delays; 0 disables them.
	Pacing float64

	// Optional data files
	CatalogPath string
	ProfilePath string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		LLMProvider:     getEnv("BIDFORGE_LLM_PROVIDER", ProviderOpenAI),
		LLMModel:        getEnv("BIDFORGE_LLM_MODEL", "gpt-4o"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),

		LogFile:  getEnv("BIDFORGE_LOG_FILE", "/tmp/bidforge.log"),
		LogLevel: parseLogLevel(getEnv("BIDFORGE_LOG_LEVEL", "INFO")),

		Pacing: parseFloat(getEnv("BIDFORGE_PACING", "1.0"), 1.0),

		CatalogPath: getEnv("BIDFORGE_CATALOG", ""),
		ProfilePath: getEnv("BIDFORGE_PROFILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseFloat(s string, defaultVal float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return defaultVal
	}
	return f
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
