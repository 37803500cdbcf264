package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LLMProvider != ProviderOpenAI {
		t.Fatalf("provider: got %q", cfg.LLMProvider)
	}
	if cfg.OpenAIModel != "llama-3.3-70b-versatile" {
		t.Fatalf("model: got %q", cfg.OpenAIModel)
	}
	if cfg.CandidatesFilePath != "data/candidates.json" {
		t.Fatalf("store path: got %q", cfg.CandidatesFilePath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("session ttl: got %v", cfg.SessionTTL)
	}
	if cfg.AdminPassword != "hr2026" {
		t.Fatalf("admin password default: got %q", cfg.AdminPassword)
	}
	if cfg.APIKey() != "gsk-test" {
		t.Fatalf("api key fallback: got %q", cfg.APIKey())
	}
}

func TestParseOpenAIKeyWins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-primary")
	t.Setenv("GROQ_API_KEY", "gsk-secondary")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.APIKey() != "sk-primary" {
		t.Fatalf("want primary key, got %q", cfg.APIKey())
	}
}

func TestParseUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic-on-a-napkin")
	if _, err := Parse(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
