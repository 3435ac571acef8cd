// Package config reads service configuration from the environment.
package config

import "os"

// ServiceConfig configures the quiz-generation backend.
type ServiceConfig struct {
	HTTPAddr string
	DBPath   string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
}

// WebConfig configures the front-end server.
type WebConfig struct {
	HTTPAddr   string
	BackendURL string

	// RequireAllAnswered gates quiz submission on every question having an
	// answer. Off by default: early submission counts the rest as incorrect.
	RequireAllAnswered bool
}

func ServiceFromEnv() ServiceConfig {
	return ServiceConfig{
		HTTPAddr:   envOr("HTTP_ADDR", ":8000"),
		DBPath:     envOr("DB_PATH", "wikiquiz.db"),
		LLMBaseURL: envOr("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:  os.Getenv("GROQ_API_KEY"),
		LLMModel:   envOr("GROQ_MODEL", "llama-3.1-8b-instant"),
	}
}

func WebFromEnv() WebConfig {
	return WebConfig{
		HTTPAddr:           envOr("HTTP_ADDR", ":3000"),
		BackendURL:         envOr("BACKEND_URL", "http://127.0.0.1:8000"),
		RequireAllAnswered: envBool("REQUIRE_ALL_ANSWERED", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
