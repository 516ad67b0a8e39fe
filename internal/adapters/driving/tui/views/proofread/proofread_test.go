package proofread

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// stubService walks a run through the states, failing at failAt if set.
type stubService struct {
	mu     sync.Mutex
	links  []string
	failAt domain.RunState
}

func (s *stubService) Run(_ context.Context, link string, observer driving.RunObserver) *domain.Run {
	s.mu.Lock()
	s.links = append(s.links, link)
	s.mu.Unlock()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	run := &domain.Run{ID: "r1", Link: link, Model: "stub-model", StartedAt: start}
	step := func(state domain.RunState) {
		run.State = state
		if state.IsTerminal() {
			run.FinishedAt = start.Add(2 * time.Second)
		}
		if observer != nil {
			observer(*run)
		}
	}

	step(domain.RunParsing)
	if s.failAt == domain.RunParsing {
		run.Err = domain.ErrInvalidLink
		step(domain.RunFailed)
		return run
	}
	run.Reference = "doc"
	step(domain.RunFetching)
	run.Original = "Teh original."
	step(domain.RunProofreading)
	if s.failAt == domain.RunProofreading {
		run.Err = fmt.Errorf("%w: %w", domain.ErrProofreadFailed, errors.New("quota"))
		step(domain.RunFailed)
		return run
	}
	run.Revised = "The original."
	step(domain.RunDone)
	return run
}

func (s *stubService) ModelName() string { return "stub-model" }

// drain feeds pipeline messages back into the view until the run finishes.
func drain(t *testing.T, v *View) []messages.StageReached {
	t.Helper()
	var stages []messages.StageReached
	for v.Running() {
		msg := waitFor(v.updates)()
		require.NotNil(t, msg)
		if s, ok := msg.(messages.StageReached); ok {
			stages = append(stages, s)
		}
		v, _ = v.Update(msg)
	}
	return stages
}

func newView(svc driving.ProofreadService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(120, 40)
	return v
}

func TestSubmit_Done(t *testing.T) {
	svc := &stubService{}
	v := newView(svc)

	cmd := v.Submit("https://docs.google.com/document/d/doc/edit")
	require.NotNil(t, cmd)
	assert.True(t, v.Running())
	assert.Equal(t, status.StateRunning, v.statusbar.State())

	stages := drain(t, v)

	require.Len(t, stages, 4)
	assert.Equal(t, domain.RunParsing, stages[0].Run.State)
	assert.Equal(t, domain.RunDone, stages[3].Run.State)
	assert.Equal(t, domain.RunDone, v.Run().State)
	assert.Equal(t, status.StateDone, v.statusbar.State())
	assert.Equal(t, "Done in 2s", v.statusbar.Message())

	out := v.View()
	assert.Contains(t, out, "Original Text")
	assert.Contains(t, out, "Teh original.")
	assert.Contains(t, out, "Improved Text")
	assert.Contains(t, out, "The original.")
}

func TestSubmit_OriginalVisibleBeforeProofreadFinishes(t *testing.T) {
	v := newView(&stubService{})
	v.Submit("https://docs.google.com/document/d/doc")

	for {
		msg := waitFor(v.updates)()
		v, _ = v.Update(msg)
		if s, ok := msg.(messages.StageReached); ok && s.Run.State == domain.RunProofreading {
			break
		}
	}

	out := v.View()
	assert.Contains(t, out, "Teh original.")
	assert.NotContains(t, out, "Improved Text")
	assert.Contains(t, v.statusbar.Message(), "Proofreading with stub-model")

	drain(t, v)
}

func TestSubmit_InvalidLink(t *testing.T) {
	v := newView(&stubService{failAt: domain.RunParsing})

	v.Submit("not a link")
	drain(t, v)

	out := v.View()
	assert.Equal(t, domain.RunFailed, v.Run().State)
	assert.Equal(t, status.StateError, v.statusbar.State())
	assert.Contains(t, out, "Error: invalid link")
	assert.NotContains(t, out, "Original Text")
}

func TestSubmit_ProofreadFailureKeepsOriginal(t *testing.T) {
	v := newView(&stubService{failAt: domain.RunProofreading})

	v.Submit("https://docs.google.com/document/d/doc")
	drain(t, v)

	out := v.View()
	assert.Contains(t, out, "Teh original.")
	assert.Contains(t, out, "Error: proofread: quota")
	assert.NotContains(t, out, "Improved Text")
}

func TestSubmit_BlankLinkStaysIdle(t *testing.T) {
	svc := &stubService{}
	v := newView(svc)

	assert.Nil(t, v.Submit("   "))
	assert.False(t, v.Running())
	assert.Nil(t, v.Run())
	assert.Empty(t, svc.links)
}

func TestSubmit_IgnoredWhileRunning(t *testing.T) {
	svc := &stubService{}
	v := newView(svc)

	require.NotNil(t, v.Submit("https://docs.google.com/document/d/a"))
	assert.Nil(t, v.Submit("https://docs.google.com/document/d/b"))
	drain(t, v)

	assert.Equal(t, []string{"https://docs.google.com/document/d/a"}, svc.links)
}

func TestSubmit_Resubmit(t *testing.T) {
	svc := &stubService{}
	v := newView(svc)

	v.Submit("https://docs.google.com/document/d/a")
	drain(t, v)
	v.Submit("https://docs.google.com/document/d/a")
	drain(t, v)

	assert.Len(t, svc.links, 2)
	assert.Equal(t, domain.RunDone, v.Run().State)
}

func TestKeys_EnterSubmitsTypedLink(t *testing.T) {
	svc := &stubService{}
	v := newView(svc)

	for _, r := range "/d/xyz" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	drain(t, v)

	assert.Equal(t, []string{"/d/xyz"}, svc.links)
}

func TestKeys_FocusCycle(t *testing.T) {
	v := newView(&stubService{})
	assert.Equal(t, FocusInput, v.Focus())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusOriginal, v.Focus())
	assert.False(t, v.input.Focused())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusRevised, v.Focus())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusInput, v.Focus())
	assert.True(t, v.input.Focused())
}

func TestKeys_EscFromInputGoesToMenu(t *testing.T) {
	v := newView(&stubService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestKeys_NewLinkClearsInput(t *testing.T) {
	v := newView(&stubService{})
	v.input.SetValue("old")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.Equal(t, FocusInput, v.Focus())
	assert.Equal(t, "", v.Link())
}

func TestView_NarrowTerminalStacksPanes(t *testing.T) {
	v := NewView(nil, nil, &stubService{})
	v.SetDimensions(80, 40)

	v.Submit("https://docs.google.com/document/d/doc")
	drain(t, v)

	out := v.View()
	origIdx := strings.Index(out, "Original Text")
	revIdx := strings.Index(out, "Improved Text")
	require.True(t, origIdx >= 0 && revIdx >= 0)
	origLine := strings.Count(out[:origIdx], "\n")
	revLine := strings.Count(out[:revIdx], "\n")
	assert.Greater(t, revLine, origLine)
}

func TestWaitFor_Nil(t *testing.T) {
	assert.Nil(t, waitFor(nil))
}
