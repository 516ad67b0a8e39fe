package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

type stubProofread struct {
	links []string
}

func (s *stubProofread) Run(_ context.Context, link string, observer driving.RunObserver) *domain.Run {
	s.links = append(s.links, link)
	now := time.Now()
	run := &domain.Run{ID: "r1", Link: link, Model: "stub", StartedAt: now}
	for _, state := range []domain.RunState{domain.RunParsing, domain.RunFetching, domain.RunProofreading, domain.RunDone} {
		run.State = state
		switch state {
		case domain.RunFetching:
			run.Reference = "abc"
		case domain.RunProofreading:
			run.Original = "orig"
		case domain.RunDone:
			run.Revised = "rev"
			run.FinishedAt = now.Add(time.Second)
		}
		if observer != nil {
			observer(*run)
		}
	}
	return run
}

func (s *stubProofread) ModelName() string { return "stub" }

func newTestApp(t *testing.T) (*App, *stubProofread) {
	t.Helper()
	svc := &stubProofread{}
	app, err := NewApp(NewPorts(svc, nil))
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app, svc
}

// pump runs cmd and feeds every resulting message back into the app,
// skipping batches and ticks so the loop terminates.
func pump(app *App, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch m := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, m...)
			continue
		case messages.StageReached, messages.RunFinished, messages.ViewChanged:
			_, next := app.Update(m)
			queue = append(queue, next)
		}
	}
}

func TestNewApp_RequiresProofread(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingProofreadService)

	var nilPorts *Ports
	_, err = NewApp(nilPorts)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, NewPorts(&stubProofread{}, nil).Validate())
}

func TestApp_StartsOnMenu(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.Contains(t, app.View(), "Google Docs Proofreader")
	assert.Contains(t, app.View(), "stub")
}

func TestApp_NotReady(t *testing.T) {
	app, err := NewApp(NewPorts(&stubProofread{}, nil))
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, app.Ready())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_MenuToProofreadAndBack(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(app, cmd)
	assert.Equal(t, messages.ViewProofread, app.CurrentView())
	assert.Contains(t, app.View(), "Link: ")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(app, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "proofread")
	assert.Contains(t, out, "switch pane")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_SettingsWithoutService(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSettings})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Contains(t, app.View(), "settings service not available")
}

func TestApp_InitialLinkRunsPipeline(t *testing.T) {
	svc := &stubProofread{}
	app, err := NewApp(NewPorts(svc, nil))
	require.NoError(t, err)
	app.WithContext(context.Background()).WithInitialLink("  https://docs.google.com/document/d/abc/edit ")
	app.SetDimensions(120, 40)

	assert.Equal(t, messages.ViewProofread, app.CurrentView())
	pump(app, app.Init())

	assert.Equal(t, []string{"https://docs.google.com/document/d/abc/edit"}, svc.links)
	require.NotNil(t, app.ProofreadView().Run())
	assert.Equal(t, domain.RunDone, app.ProofreadView().Run().State)
	assert.NoError(t, app.Err())

	out := app.View()
	assert.Contains(t, out, "orig")
	assert.Contains(t, out, "rev")
}

func TestApp_PipelineMessagesReachProofreadViewFromMenu(t *testing.T) {
	app, _ := newTestApp(t)

	run := &domain.Run{State: domain.RunFailed, Err: domain.ErrInvalidLink}
	app.Update(messages.RunFinished{Run: run})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.Same(t, run, app.ProofreadView().Run())
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidLink)
}
