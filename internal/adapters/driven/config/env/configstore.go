// Package env overlays environment variables on top of another
// driven.ConfigStore. Variables take precedence over stored values;
// writes go to the underlying store.
//
// A .env file in the working directory is loaded by cmd/docproof through
// godotenv/autoload before this store is built, so its entries are seen
// here like any other variable.
package env

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Config keys understood by the application.
const (
	KeyLLMProvider           = "llm.provider"
	KeyLLMModel              = "llm.model"
	KeyLLMAPIKey             = "llm.api_key"
	KeyLLMBaseURL            = "llm.base_url"
	KeyGoogleCredentialsJSON = "google.credentials_json"
	KeyGoogleCredentialsFile = "google.credentials_file"
	KeyServerPort            = "server.port"
)

// Variables maps environment variables to the config key they override.
var Variables = map[string]string{
	"DOCPROOF_LLM_PROVIDER":          KeyLLMProvider,
	"DOCPROOF_LLM_MODEL":             KeyLLMModel,
	"DOCPROOF_LLM_API_KEY":           KeyLLMAPIKey,
	"DOCPROOF_LLM_BASE_URL":          KeyLLMBaseURL,
	"GCP_CREDENTIALS":                KeyGoogleCredentialsJSON,
	"GOOGLE_APPLICATION_CREDENTIALS": KeyGoogleCredentialsFile,
	"PORT":                           KeyServerPort,
}

// providerKeyVariables are consulted for llm.api_key when DOCPROOF_LLM_API_KEY
// is unset, based on the effective provider.
var providerKeyVariables = map[domain.AIProvider]string{
	domain.AIProviderGemini:    "GOOGLE_API_KEY",
	domain.AIProviderOpenAI:    "OPENAI_API_KEY",
	domain.AIProviderAnthropic: "ANTHROPIC_API_KEY",
}

// ConfigStore reads environment variables before falling back to base.
type ConfigStore struct {
	base   driven.ConfigStore
	lookup func(string) (string, bool)
}

// NewConfigStore wraps base with the process environment.
func NewConfigStore(base driven.ConfigStore) *ConfigStore {
	return &ConfigStore{base: base, lookup: os.LookupEnv}
}

// Get returns the environment override for key if set, else the base value.
func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.fromEnv(key); ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if v, ok := s.fromEnv(key); ok {
		return v
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := s.fromEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return s.base.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	if v, ok := s.fromEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.base.GetBool(key)
}

// Set writes to the base store. An environment override for the same key
// still wins on the next read.
func (s *ConfigStore) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Keys returns the union of stored keys and keys overridden by the environment.
func (s *ConfigStore) Keys() []string {
	seen := make(map[string]struct{})
	for _, k := range s.base.Keys() {
		seen[k] = struct{}{}
	}
	for name, key := range Variables {
		if v, ok := s.lookup(name); ok && v != "" {
			seen[key] = struct{}{}
		}
	}
	if _, ok := s.fromEnv(KeyLLMAPIKey); ok {
		seen[KeyLLMAPIKey] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the base store's path.
func (s *ConfigStore) Path() string {
	return s.base.Path()
}

// Source reports the environment variable overriding key, or "" when the
// value comes from the base store.
func (s *ConfigStore) Source(key string) string {
	for name, k := range Variables {
		if k != key {
			continue
		}
		if v, ok := s.lookup(name); ok && v != "" {
			return name
		}
	}
	if key == KeyLLMAPIKey {
		if name := providerKeyVariables[s.provider()]; name != "" {
			if v, ok := s.lookup(name); ok && v != "" {
				return name
			}
		}
	}
	return ""
}

func (s *ConfigStore) fromEnv(key string) (string, bool) {
	name := s.Source(key)
	if name == "" {
		return "", false
	}
	v, _ := s.lookup(name)
	return strings.TrimSpace(v), true
}

func (s *ConfigStore) provider() domain.AIProvider {
	if v, ok := s.lookup("DOCPROOF_LLM_PROVIDER"); ok && v != "" {
		return domain.AIProvider(strings.TrimSpace(v))
	}
	if p := s.base.GetString(KeyLLMProvider); p != "" {
		return domain.AIProvider(p)
	}
	return domain.DefaultSettings().LLM.Provider
}
