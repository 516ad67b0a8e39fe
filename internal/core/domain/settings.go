package domain

const unknownDescription = "Unknown"

// AIProvider identifies a language model provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Gemini API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name. Empty selects the provider default.
	Model string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// APIKey is the API key for cloud providers.
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// GoogleSettings holds credentials for the document API.
type GoogleSettings struct {
	// CredentialsJSON is an inline service account key.
	CredentialsJSON string

	// CredentialsFile is a path to a service account key file.
	// Ignored when CredentialsJSON is set.
	CredentialsFile string
}

// IsConfigured returns true if some form of credentials is present.
func (g GoogleSettings) IsConfigured() bool {
	return g.CredentialsJSON != "" || g.CredentialsFile != ""
}

// ServerSettings holds web server configuration.
type ServerSettings struct {
	// Port is the TCP port the web UI listens on.
	Port int
}

// DefaultServerPort is used when no port is configured.
const DefaultServerPort = 8501

// Settings aggregates all application settings.
type Settings struct {
	LLM    LLMSettings
	Google GoogleSettings
	Server ServerSettings
}

// DefaultSettings returns settings with the Gemini provider selected.
func DefaultSettings() Settings {
	return Settings{
		LLM:    LLMSettings{Provider: AIProviderGemini},
		Server: ServerSettings{Port: DefaultServerPort},
	}
}

// DefaultLLMModel returns the model used when none is configured.
func (p AIProvider) DefaultLLMModel() string {
	switch p {
	case AIProviderGemini:
		return "gemini-pro"
	case AIProviderOpenAI:
		return "gpt-4o-mini"
	case AIProviderAnthropic:
		return "claude-3-5-sonnet-latest"
	case AIProviderOllama:
		return "llama3.2"
	default:
		return ""
	}
}

// ResolvedModel returns Model, or the provider default when Model is empty.
func (l LLMSettings) ResolvedModel() string {
	if l.Model != "" {
		return l.Model
	}
	return l.Provider.DefaultLLMModel()
}

// AllAIProviders returns the supported providers, default first.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderGemini, AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama}
}
