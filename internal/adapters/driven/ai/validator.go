package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// DefaultPingTimeout bounds a single connectivity check.
const DefaultPingTimeout = 5 * time.Second

// Ensure ConfigValidator implements the interface.
var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks that LLM settings reach a working provider.
type ConfigValidator struct {
	create  func(*domain.LLMSettings) (driven.LLMService, error)
	timeout time.Duration
}

// NewConfigValidator creates a validator that builds clients with
// CreateLLMService and pings them within DefaultPingTimeout.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{create: CreateLLMService, timeout: DefaultPingTimeout}
}

// ValidateLLM builds a client for settings, pings it, and closes it.
// Every failure wraps domain.ErrLLMUnavailable.
func (v *ConfigValidator) ValidateLLM(settings *domain.LLMSettings) error {
	svc, err := v.create(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s (%s) unreachable: %w. Run 'docproof config set-key' to fix",
			domain.ErrLLMUnavailable, settings.Provider, svc.ModelName(), err)
	}
	return nil
}
