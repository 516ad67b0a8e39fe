package driven

import "github.com/custodia-labs/docproof/internal/core/domain"

// AIConfigValidator checks that an LLM configuration actually works.
type AIConfigValidator interface {
	// ValidateLLM creates a client from the settings and pings the provider.
	ValidateLLM(config *domain.LLMSettings) error
}
