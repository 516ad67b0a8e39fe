// Package proofread provides the link input and side-by-side result view.
package proofread

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// Focus identifies which element receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusOriginal
	FocusRevised
)

// sideBySideWidth is the narrowest terminal that shows both panes in a row.
const sideBySideWidth = 100

// View is the proofreading view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.LinkInput
	spinner   spinner.Model
	original  viewport.Model
	revised   viewport.Model
	statusbar *status.Bar

	service driving.ProofreadService
	ctx     context.Context

	run     *domain.Run
	running bool
	updates chan tea.Msg
	focus   Focus

	width  int
	height int
	ready  bool
}

// NewView creates a new proofread view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.ProofreadService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewLinkInput(s),
		spinner:   sp,
		original:  viewport.New(40, 10),
		revised:   viewport.New(40, 10),
		statusbar: status.NewBar(s, km),
		service:   service,
		ctx:       context.Background(),
		focus:     FocusInput,
		width:     80,
		height:    24,
	}
	if service != nil {
		v.statusbar.SetModel(service.ModelName())
	}
	return v
}

// WithContext sets the context runs are started with.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the proofread view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StageReached:
		run := msg.Run
		v.apply(&run)
		return v, waitFor(v.updates)

	case messages.RunFinished:
		v.running = false
		v.apply(msg.Run)
		return v, nil

	case spinner.TickMsg:
		if !v.running {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Back) {
		if v.focus != FocusInput {
			return v, v.setFocus(FocusInput)
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(keyStr, v.keymap.SwitchPane) {
		return v, v.setFocus((v.focus + 1) % 3)
	}

	if v.focus == FocusInput {
		if keymap.Matches(keyStr, v.keymap.Submit) {
			return v, v.Submit(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if keymap.Matches(keyStr, v.keymap.NewLink) {
		v.input.Reset()
		return v, v.setFocus(FocusInput)
	}

	pane := &v.original
	if v.focus == FocusRevised {
		pane = &v.revised
	}
	var cmd tea.Cmd
	*pane, cmd = pane.Update(msg)
	return v, cmd
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.statusbar.SetPaneFocus(f != FocusInput)
	if f == FocusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// Submit starts a pipeline run for link in the background. It is ignored
// while a run is in progress; a blank link clears the panes.
func (v *View) Submit(link string) tea.Cmd {
	if v.running || v.service == nil {
		return nil
	}
	v.input.SetValue(link)
	if strings.TrimSpace(link) == "" {
		v.reset()
		return nil
	}

	v.reset()
	v.running = true
	v.statusbar.SetState(status.StateRunning)
	v.statusbar.SetMessage("Parsing link...")

	updates := make(chan tea.Msg, 8)
	v.updates = updates
	service, ctx := v.service, v.ctx
	go func() {
		defer close(updates)
		run := service.Run(ctx, link, func(r domain.Run) {
			updates <- messages.StageReached{Run: r}
		})
		updates <- messages.RunFinished{Run: run}
	}()

	return tea.Batch(v.spinner.Tick, waitFor(updates))
}

// waitFor delivers the next pipeline message, or nothing once ch is closed.
func waitFor(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (v *View) reset() {
	v.run = nil
	v.original.SetContent("")
	v.revised.SetContent("")
	v.statusbar.Clear()
}

// apply renders a run snapshot. Panes fill as soon as their text exists.
func (v *View) apply(run *domain.Run) {
	if run == nil {
		return
	}
	v.run = run

	if run.HasOriginal() {
		v.original.SetContent(v.wrap(string(run.Original)))
	}
	if run.HasRevised() {
		v.revised.SetContent(v.wrap(string(run.Revised)))
	}

	switch run.State {
	case domain.RunParsing:
		v.statusbar.SetMessage("Parsing link...")
	case domain.RunFetching:
		v.statusbar.SetMessage("Fetching document...")
	case domain.RunProofreading:
		v.statusbar.SetMessage(fmt.Sprintf("Proofreading with %s...", run.Model))
	case domain.RunDone:
		v.statusbar.SetState(status.StateDone)
		v.statusbar.SetMessage(fmt.Sprintf("Done in %s", run.Duration().Round(100*time.Millisecond)))
	case domain.RunFailed:
		v.statusbar.SetState(status.StateError)
	case domain.RunIdle:
		v.statusbar.Clear()
	}
}

func (v *View) wrap(text string) string {
	return lipgloss.NewStyle().Width(v.original.Width).Render(text)
}

// View renders the proofread view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Google Docs Proofreader"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Paste a Google Docs link (shared with 'Anyone with the link can view')."))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")

	if v.running {
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render(v.statusbar.Message()))
		b.WriteString("\n")
	}

	if v.run != nil && v.run.State == domain.RunFailed {
		b.WriteString(v.styles.ErrorBox.Width(v.width - 4).Render(v.run.Message()))
		b.WriteString("\n")
	}

	if v.run != nil && v.run.HasOriginal() {
		b.WriteString(v.renderPanes())
		b.WriteString("\n")
	}

	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderPanes() string {
	original := v.renderPane("Original Text", v.original, v.focus == FocusOriginal)
	if !v.run.HasRevised() {
		return original
	}
	revised := v.renderPane("Improved Text", v.revised, v.focus == FocusRevised)

	if v.width >= sideBySideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, original, revised)
	}
	return lipgloss.JoinVertical(lipgloss.Left, original, revised)
}

func (v *View) renderPane(title string, vp viewport.Model, focused bool) string {
	style := v.styles.Pane
	if focused {
		style = v.styles.FocusedPane
	}
	header := v.styles.Subtitle.Render(title)
	return style.Render(header + "\n" + vp.View())
}

// SetDimensions sizes the input and panes for the terminal.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	// Title, hint, input, spinner, error and status lines plus pane chrome.
	const reserved = 14
	paneHeight := height - reserved
	paneWidth := width - 4
	if width >= sideBySideWidth {
		paneWidth = width/2 - 4
	} else {
		paneHeight /= 2
	}
	if paneHeight < 3 {
		paneHeight = 3
	}
	if paneWidth < 20 {
		paneWidth = 20
	}

	v.original.Width, v.original.Height = paneWidth, paneHeight
	v.revised.Width, v.revised.Height = paneWidth, paneHeight

	if v.run != nil {
		v.apply(v.run)
	}
}

// Run returns the latest run snapshot, or nil before the first submit.
func (v *View) Run() *domain.Run {
	return v.run
}

// Running reports whether a run is in progress.
func (v *View) Running() bool {
	return v.running
}

// Focus returns the focused element.
func (v *View) Focus() Focus {
	return v.focus
}

// Link returns the current input value.
func (v *View) Link() string {
	return v.input.Value()
}
