package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error} {
		assert.NotEmpty(t, string(c))
		assert.False(t, seen[c], "duplicate accent %s", c)
		seen[c] = true
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()
	assert.Same(t, theme, NewStyles(theme).Theme())

	s := NewStyles(nil)
	require.NotNil(t, s.Theme())
}

func TestStyles_Panes(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Theme().Border, s.Pane.GetBorderTopForeground())
	assert.Equal(t, s.Theme().Primary, s.FocusedPane.GetBorderTopForeground())
	assert.Equal(t, s.Theme().Error, s.ErrorBox.GetForeground())
}

func TestStyles_CanRenderText(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"title":    s.Title,
		"muted":    s.Muted,
		"error":    s.Error,
		"pane":     s.Pane,
		"errorbox": s.ErrorBox,
		"status":   s.StatusBar,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, style.Render("test text"), "test text")
		})
	}
}
