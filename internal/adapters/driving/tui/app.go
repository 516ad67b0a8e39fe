package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/views/proofread"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context runs are started with.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	proofreadView *proofread.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// initialLink is submitted on Init when set.
	initialLink string

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	menuView := menu.NewView(s, km)
	menuView.SetModel(ports.Proofread.ModelName())

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menuView,
		proofreadView: proofread.NewView(s, km, ports.Proofread),
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.proofreadView.WithContext(ctx)
	return a
}

// WithInitialLink opens the proofread view and submits link on start.
func (a *App) WithInitialLink(link string) *App {
	a.initialLink = strings.TrimSpace(link)
	if a.initialLink != "" {
		a.currentView = messages.ViewProofread
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("docproof - Google Docs Proofreader"),
		a.proofreadView.Init(),
	}
	if a.initialLink != "" {
		cmds = append(cmds, a.proofreadView.Submit(a.initialLink))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewProofread:
			a.proofreadView, cmd = a.proofreadView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Quit) {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewProofread:
			return a, a.proofreadView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	// Pipeline messages keep flowing while another view is shown.
	case messages.StageReached, messages.RunFinished, spinner.TickMsg:
		a.proofreadView, cmd = a.proofreadView.Update(msg)
		if done, ok := msg.(messages.RunFinished); ok && done.Run != nil {
			a.err = done.Run.Err
		}
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved, messages.LLMValidated:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewProofread:
		a.proofreadView, cmd = a.proofreadView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewProofread:
		return a.proofreadView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			b.WriteString(formatBinding(binding))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

func formatBinding(binding key.Binding) string {
	h := binding.Help()
	return fmt.Sprintf("  %-12s%s", h.Key, h.Desc)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the error of the last failed run.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// ProofreadView returns the proofread view.
func (a *App) ProofreadView() *proofread.View {
	return a.proofreadView
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.proofreadView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
