// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"fmt"

	anthropicllm "github.com/custodia-labs/docproof/internal/adapters/driven/llm/anthropic"
	geminillm "github.com/custodia-labs/docproof/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/custodia-labs/docproof/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/docproof/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// CreateLLMService creates the LLM service for the configured provider.
// An unconfigured provider is an error: the pipeline cannot run without one.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: no provider configured. Set GOOGLE_API_KEY or run 'docproof config set-key'",
			domain.ErrLLMUnavailable)
	}

	var (
		svc driven.LLMService
		err error
	)
	switch settings.Provider {
	case domain.AIProviderGemini:
		svc, err = geminillm.NewLLMService(geminillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderOllama:
		svc = ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderOpenAI:
		svc, err = openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderAnthropic:
		svc, err = anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", domain.ErrLLMUnavailable, settings.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	return svc, nil
}
