// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docproof/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionLLM
)

// Overview items.
const (
	itemLLM = iota
	itemValidate
	overviewItems
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyTab   = "tab"
)

// restartNotice is shown after the provider changes. The running pipeline
// keeps the client it was started with.
const restartNotice = "Saved. Restart docproof to use the new provider."

var errNoService = errors.New("settings service not available")

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings   *domain.Settings
	validation error
	err        error
	notice     string

	// LLM ping state
	validating bool
	pinged     bool
	pingErr    error

	// Navigation state
	section      Section
	selected     int // selection within current section
	focusedField int // 1 when the API key input has focus

	llmAPIKeyInput textinput.Model

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	llmAPIKeyInput := textinput.New()
	llmAPIKeyInput.Placeholder = "Enter API key (blank keeps the current key)"
	llmAPIKeyInput.EchoMode = textinput.EchoPassword
	llmAPIKeyInput.CharLimit = 256

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		llmAPIKeyInput:  llmAPIKeyInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads and validates current settings.
func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		settings, err := service.Get()
		if err != nil {
			return messages.SettingsLoaded{Err: err}
		}
		return messages.SettingsLoaded{Settings: settings, Validation: service.Validate()}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.validation = msg.Validation
		v.err = nil
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = restartNotice
		v.pinged = false
		v.section = SectionOverview
		v.selected = 0
		v.focusedField = 0
		v.llmAPIKeyInput.SetValue("")
		v.llmAPIKeyInput.Blur()
		return v, v.loadSettings()

	case messages.LLMValidated:
		v.validating = false
		v.pinged = true
		v.pingErr = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.section = SectionOverview
		v.selected = 0
		v.focusedField = 0
		v.llmAPIKeyInput.Blur()
		return v, nil
	}

	if v.section == SectionLLM {
		return v.handleLLMKeys(msg)
	}
	return v.handleOverviewKeys(msg)
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < overviewItems-1 {
			v.selected++
		}
	case "v":
		return v, v.validateLLM()
	case keyEnter:
		switch v.selected {
		case itemLLM:
			v.section = SectionLLM
			v.selected = v.getLLMProviderIndex()
			v.notice = ""
		case itemValidate:
			return v, v.validateLLM()
		}
	}
	return v, nil
}

//nolint:gocognit // TUI input complexity
func (v *View) handleLLMKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllAIProviders()

	if v.focusedField == 1 {
		switch msg.String() {
		case keyTab, "shift+tab":
			v.focusedField = 0
			v.llmAPIKeyInput.Blur()
			return v, nil
		case keyEnter:
			if v.selected >= 0 && v.selected < len(providers) {
				return v, v.setLLMProvider(providers[v.selected], v.llmAPIKeyInput.Value())
			}
		default:
			var cmd tea.Cmd
			v.llmAPIKeyInput, cmd = v.llmAPIKeyInput.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(providers)-1 {
			v.selected++
		}
	case keyTab:
		if v.selected >= 0 && v.selected < len(providers) && providers[v.selected].RequiresAPIKey() {
			v.focusedField = 1
			return v, v.llmAPIKeyInput.Focus()
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < len(providers) {
			provider := providers[v.selected]
			if provider.RequiresAPIKey() && !v.hasStoredKey(provider) {
				v.focusedField = 1
				return v, v.llmAPIKeyInput.Focus()
			}
			return v, v.setLLMProvider(provider, "")
		}
	}
	return v, nil
}

// hasStoredKey reports whether switching to provider can reuse the saved key.
func (v *View) hasStoredKey(provider domain.AIProvider) bool {
	return v.settings != nil && v.settings.LLM.Provider == provider && v.settings.LLM.APIKey != ""
}

// Commands to update settings.

func (v *View) setLLMProvider(provider domain.AIProvider, apiKey string) tea.Cmd {
	service := v.settingsService
	model := ""
	if v.settings != nil && v.settings.LLM.Provider == provider {
		model = v.settings.LLM.Model
	}
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: errNoService}
		}
		return messages.SettingsSaved{Err: service.SetLLMProvider(provider, model, apiKey)}
	}
}

func (v *View) validateLLM() tea.Cmd {
	if v.validating {
		return nil
	}
	v.validating = true
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.LLMValidated{Err: errNoService}
		}
		return messages.LLMValidated{Err: service.ValidateLLMConfig()}
	}
}

func (v *View) getLLMProviderIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, p := range domain.AllAIProviders() {
		if p == v.settings.LLM.Provider {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionLLM:
		b.WriteString(v.renderLLMSelect())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder
	llm := v.settings.LLM

	llmValue := "Not Set"
	if llm.Provider != "" {
		llmValue = fmt.Sprintf("%s (%s)", llm.Provider.Description(), llm.ResolvedModel())
	}
	llmStatus := v.styles.Warning.Render("[needs API key]")
	if llm.IsConfigured() {
		llmStatus = v.styles.Success.Render("[configured]")
	}

	pingValue := "press v to check"
	switch {
	case v.validating:
		pingValue = "checking..."
	case v.pinged && v.pingErr != nil:
		pingValue = v.styles.Error.Render("failed: " + v.pingErr.Error())
	case v.pinged:
		pingValue = v.styles.Success.Render("ok")
	}

	items := []struct{ label, value string }{
		itemLLM:      {"LLM Provider", llmValue + " " + llmStatus},
		itemValidate: {"Connection", pingValue},
	}
	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("  API Key: " + maskAPIKey(llm.APIKey)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("  Google Credentials: " + v.credentialsValue()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  Web Port: %d", v.settings.Server.Port)))
	b.WriteString("\n\n")

	if v.notice != "" {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	if v.validation != nil {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", v.validation.Error())))
	} else {
		b.WriteString(v.styles.Success.Render("Configuration is valid"))
	}

	return b.String()
}

func (v *View) credentialsValue() string {
	g := v.settings.Google
	switch {
	case g.CredentialsJSON != "":
		return "inline service account"
	case g.CredentialsFile != "":
		return g.CredentialsFile
	default:
		return "not set"
	}
}

func (v *View) renderLLMSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select LLM Provider"))
	b.WriteString("\n\n")

	providers := domain.AllAIProviders()
	for i, provider := range providers {
		indicator := "  "
		if i == v.selected && v.focusedField == 0 {
			indicator = "> "
		}

		current := ""
		if provider == v.settings.LLM.Provider {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, provider.Description(), current)
		if i == v.selected && v.focusedField == 0 {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    Model: %s", provider.DefaultLLMModel())))
		b.WriteString("\n")
	}

	if v.selected >= 0 && v.selected < len(providers) && providers[v.selected].RequiresAPIKey() {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("API Key:"))
		b.WriteString("\n")
		b.WriteString(v.llmAPIKeyInput.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch {
	case v.section == SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [v] check connection  [esc] back")
	case v.focusedField == 1:
		return v.styles.Help.Render("[tab] back to list  [enter] save  [esc] back")
	default:
		return v.styles.Help.Render("[j/k] navigate  [tab] API key  [enter] select  [esc] back")
	}
}

// maskAPIKey shows only the first and last four characters of a key.
func maskAPIKey(key string) string {
	switch {
	case key == "":
		return "Not Set"
	case len(key) <= 8:
		return "****"
	default:
		return key[:4] + "..." + key[len(key)-4:]
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.focusedField = 0
	v.err = nil
	v.notice = ""
	v.llmAPIKeyInput.SetValue("")
	v.llmAPIKeyInput.Blur()
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}
