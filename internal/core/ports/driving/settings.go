package driving

import "github.com/custodia-labs/docproof/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// SetLLMProvider configures the LLM provider.
	// An empty apiKey keeps the stored key.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// Set stores a single raw configuration value by key.
	Set(key, value string) error

	// Validate checks that the pipeline can be built from current settings.
	Validate() error

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
