package mcp

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// mockProofreadService returns a done run for links containing "/d/" and
// an invalid-link failure otherwise. fail forces a proofread failure.
type mockProofreadService struct {
	mu    sync.Mutex
	links []string
	fail  bool
}

func (m *mockProofreadService) Run(_ context.Context, link string, _ driving.RunObserver) *domain.Run {
	m.mu.Lock()
	m.links = append(m.links, link)
	m.mu.Unlock()

	run := &domain.Run{ID: "run-1", Link: link, Model: "gemini-pro"}
	_, rest, ok := strings.Cut(link, "/d/")
	if !ok {
		run.State = domain.RunFailed
		run.Err = domain.ErrInvalidLink
		return run
	}
	id, _, _ := strings.Cut(rest, "/")
	run.Reference = domain.DocumentReference(id)
	run.Original = "Teh text."
	if m.fail {
		run.State = domain.RunFailed
		run.Err = errors.Join(domain.ErrProofreadFailed, errors.New("quota exceeded"))
		return run
	}
	run.Revised = "The text."
	run.State = domain.RunDone
	return run
}

func (m *mockProofreadService) ModelName() string { return "gemini-pro" }

func (m *mockProofreadService) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.links...)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings    *domain.Settings
	err         error
	validateErr error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetLLMProvider(domain.AIProvider, string, string) error {
	return nil
}

func (m *mockSettingsService) Set(string, string) error {
	return nil
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) ValidateLLMConfig() error {
	return nil
}
