package llm

import (
	"fmt"
	"strings"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/config"
)

// Factory creates LLM clients from configuration.
type Factory struct {
	APIKey           string
	BaseURL          string
	YandexOAuthToken string
	YandexFolderID   string
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		APIKey:           cfg.APIKey(),
		BaseURL:          cfg.OpenAIBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
}

func (f *Factory) CreateClient(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case string(config.ProviderOpenAI):
		if f.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY or GROQ_API_KEY")
		}
		return NewOpenAI(f.APIKey, f.BaseURL, model, nil), nil
	case string(config.ProviderYandex):
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
