package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider           = "llm.provider"
	keyLLMModel              = "llm.model"
	keyLLMBaseURL            = "llm.base_url"
	keyLLMAPIKey             = "llm.api_key"
	keyGoogleCredentialsJSON = "google.credentials_json"
	keyGoogleCredentialsFile = "google.credentials_file"
	keyServerPort            = "server.port"
)

// SettableKeys lists the keys accepted by SettingsService.Set.
var SettableKeys = []string{
	keyGoogleCredentialsFile,
	keyGoogleCredentialsJSON,
	keyLLMAPIKey,
	keyLLMBaseURL,
	keyLLMModel,
	keyLLMProvider,
	keyServerPort,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
// aiValidator may be nil, in which case ValidateLLMConfig is a no-op.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			Model:    s.configStore.GetString(keyLLMModel),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Google: domain.GoogleSettings{
			CredentialsJSON: s.configStore.GetString(keyGoogleCredentialsJSON),
			CredentialsFile: s.configStore.GetString(keyGoogleCredentialsFile),
		},
		Server: domain.ServerSettings{
			Port: s.getInt(keyServerPort, defaults.Server.Port),
		},
	}
	settings.LLM.Model = settings.LLM.ResolvedModel()

	return settings, nil
}

// SetLLMProvider configures the LLM provider.
// An empty model selects the provider default; an empty apiKey keeps the stored key.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, provider)
	}

	if apiKey == "" && provider.RequiresAPIKey() && s.configStore.GetString(keyLLMAPIKey) == "" {
		return fmt.Errorf("%w: API key required for %s", domain.ErrInvalidInput, provider)
	}

	if model == "" {
		model = provider.DefaultLLMModel()
	}

	if err := s.configStore.Set(keyLLMProvider, provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}

	// Local providers need a base URL; cloud providers use their default endpoint.
	baseURL := ""
	if provider.IsLocal() {
		baseURL = s.configStore.GetString(keyLLMBaseURL)
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
	}
	if err := s.configStore.Set(keyLLMBaseURL, baseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}

	if apiKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, apiKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	return nil
}

// Set stores a single raw value. Only SettableKeys are accepted; values are
// checked and converted to their stored type.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any = value
	switch key {
	case keyLLMProvider:
		if !domain.AIProvider(value).IsValid() {
			return fmt.Errorf("%w: invalid LLM provider: %s", domain.ErrInvalidInput, value)
		}
	case keyServerPort:
		port, err := strconv.Atoi(value)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("%w: invalid port: %s", domain.ErrInvalidInput, value)
		}
		stored = port
	case keyLLMModel, keyLLMBaseURL, keyLLMAPIKey, keyGoogleCredentialsJSON, keyGoogleCredentialsFile:
	default:
		return fmt.Errorf("%w: unknown setting %q (valid: %s)",
			domain.ErrInvalidInput, key, strings.Join(SettableKeys, ", "))
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Validate checks that a pipeline can be built from current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.LLM.IsConfigured() {
		return fmt.Errorf("%w: %s needs an API key", domain.ErrLLMUnavailable, settings.LLM.Provider.Description())
	}
	if !settings.Google.IsConfigured() {
		return fmt.Errorf("%w: set GCP_CREDENTIALS or %s", domain.ErrAuthRequired, keyGoogleCredentialsFile)
	}

	return nil
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getProvider(defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(keyLLMProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
