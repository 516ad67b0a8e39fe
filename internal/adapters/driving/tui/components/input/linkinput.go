// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/styles"
)

// LinkInput wraps a bubbles textinput for pasting a document link.
type LinkInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewLinkInput creates a focused link input.
func NewLinkInput(s *styles.Styles) *LinkInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "https://docs.google.com/document/d/..."
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 60

	return &LinkInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the input.
func (l *LinkInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (l *LinkInput) Update(msg tea.Msg) (*LinkInput, tea.Cmd) {
	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

// View renders the input with its label.
func (l *LinkInput) View() string {
	label := l.styles.Title.Render("Link: ")
	field := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (l *LinkInput) Value() string {
	return l.textinput.Value()
}

// SetValue sets the input value.
func (l *LinkInput) SetValue(value string) {
	l.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (l *LinkInput) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *LinkInput) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *LinkInput) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the total width, label included.
func (l *LinkInput) SetWidth(width int) {
	l.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	l.textinput.Width = inputWidth
}

// Width returns the current width.
func (l *LinkInput) Width() int {
	return l.width
}

// Reset clears the input.
func (l *LinkInput) Reset() {
	l.textinput.Reset()
}
