package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8501"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	GroqAPIKey       string      `env:"GROQ_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"llama-3.3-70b-versatile"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Security
	EncryptionKey     string `env:"ENCRYPTION_KEY"`
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"hr2026"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Storage
	CandidatesFilePath string `env:"CANDIDATES_FILE_PATH" envDefault:"data/candidates.json"`

	// Prompts
	PromptsFilePath string `env:"PROMPTS_FILE_PATH"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Optional surfaces
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ReportCron       string `env:"REPORT_CRON"`
	ReportDir        string `env:"REPORT_DIR" envDefault:"reports"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"pretty"`
}

// LoadDotEnv loads .env into the process environment. A missing file is
// reported to the caller but is not fatal.
func LoadDotEnv() error {
	return godotenv.Load(".env")
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.LLMProvider {
	case ProviderOpenAI, ProviderYandex:
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
	return cfg, nil
}

// APIKey returns the key for the OpenAI-compatible endpoint, falling back
// to GROQ_API_KEY.
func (c *Config) APIKey() string {
	if c.OpenAIAPIKey != "" {
		return c.OpenAIAPIKey
	}
	return c.GroqAPIKey
}
