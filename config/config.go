package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide configuration. It is loaded once at
// startup and treated as immutable afterwards; components receive it (or
// the values they need) at construction time.
type Config struct {
	Port            string
	GeminiAPIKey    string
	GeminiModel     string
	WebhookURL      string
	DecisionTimeout time.Duration
	WebhookTimeout  time.Duration
}

// LoadFromEnv builds a Config from environment variables, applying
// development defaults where a value is not set.
func LoadFromEnv() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		WebhookURL:      os.Getenv("N8N_WEBHOOK_URL"),
		DecisionTimeout: durationFromEnv("DECISION_TIMEOUT_SECONDS", 60*time.Second),
		WebhookTimeout:  durationFromEnv("WEBHOOK_TIMEOUT_SECONDS", 5*time.Second),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-1.5-pro"
	}
	return cfg
}

// durationFromEnv reads a positive integer number of seconds from the
// environment, falling back when unset or invalid.
func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
