package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// mockReader is a test double for driven.DocumentReader.
type mockReader struct {
	mu    sync.Mutex
	body  *domain.Body
	err   error
	calls []domain.DocumentReference
}

func (m *mockReader) ReadDocument(_ context.Context, ref domain.DocumentReference) (*domain.Body, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ref)
	return m.body, m.err
}

func (m *mockReader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockLLM is a test double for driven.LLMService. With echo set it returns
// the prompt unchanged.
type mockLLM struct {
	mu      sync.Mutex
	output  string
	echo    bool
	err     error
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if m.echo {
		return prompt, nil
	}
	return m.output, nil
}

func (m *mockLLM) ModelName() string          { return "mock-model" }
func (m *mockLLM) Ping(context.Context) error { return nil }
func (m *mockLLM) Close() error               { return nil }

func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// mockPromptStore is a test double for driven.PromptStore.
type mockPromptStore struct {
	template string
	err      error
	reloads  int
}

func (m *mockPromptStore) Load(string) (string, error) { return m.template, m.err }
func (m *mockPromptStore) Reload()                     { m.reloads++ }

type stageObservation struct {
	stage domain.RunState
	err   error
}

// mockMetrics records what the pipeline reports.
type mockMetrics struct {
	mu     sync.Mutex
	stages []stageObservation
	runs   []domain.Run
}

func (m *mockMetrics) ObserveStage(stage domain.RunState, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, stageObservation{stage: stage, err: err})
}

func (m *mockMetrics) ObserveRun(run *domain.Run) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, *run)
}

func twoParagraphBody() *domain.Body {
	return &domain.Body{
		Content: []domain.StructuralElement{
			{Paragraph: &domain.Paragraph{Elements: []domain.ParagraphElement{
				{TextRun: &domain.TextRun{Content: "Hello "}},
			}}},
			{Paragraph: &domain.Paragraph{Elements: []domain.ParagraphElement{
				{TextRun: &domain.TextRun{Content: "world."}},
			}}},
		},
	}
}
