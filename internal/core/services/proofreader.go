package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
	"github.com/custodia-labs/docproof/internal/logger"
)

// Proofreader asks a language model for a revised version of a text.
type Proofreader struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewProofreader creates a proofreader. prompts may be nil, in which case
// the built-in template is used.
func NewProofreader(llm driven.LLMService, prompts driven.PromptStore) *Proofreader {
	return &Proofreader{llm: llm, prompts: prompts}
}

// Proofread sends one single-turn request and returns the output verbatim.
// Every failure is wrapped with domain.ErrProofreadFailed.
func (p *Proofreader) Proofread(ctx context.Context, text domain.DocumentContent) (domain.ProofreadResult, error) {
	if p.llm == nil {
		return "", fmt.Errorf("%w: %w", domain.ErrProofreadFailed, domain.ErrLLMUnavailable)
	}

	prompt, err := domain.BuildProofreadPrompt(p.template(), text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrProofreadFailed, err)
	}

	out, err := p.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrProofreadFailed, err)
	}

	return domain.ProofreadResult(out), nil
}

// ModelName returns the model in use, or "" when none is configured.
func (p *Proofreader) ModelName() string {
	if p.llm == nil {
		return ""
	}
	return p.llm.ModelName()
}

// template returns the stored template when it is usable, else the default.
func (p *Proofreader) template() string {
	if p.prompts == nil {
		return domain.DefaultProofreadTemplate
	}
	tmpl, err := p.prompts.Load(driven.PromptProofread)
	if err != nil {
		logger.Warn("load proofread prompt: %v, using default", err)
		return domain.DefaultProofreadTemplate
	}
	if _, err := domain.BuildProofreadPrompt(tmpl, ""); err != nil {
		logger.Warn("proofread prompt ignored: %v", err)
		return domain.DefaultProofreadTemplate
	}
	return tmpl
}
