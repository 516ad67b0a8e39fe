// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docproof/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewProofread is the link input with original and revised panes.
	ViewProofread
	// ViewSettings is the settings view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewProofread:
		return "proofread"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// StageReached carries a snapshot of a run after a state transition.
type StageReached struct {
	Run domain.Run
}

// RunFinished carries the final run once the pipeline returns.
type RunFinished struct {
	Run *domain.Run
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// SettingsLoaded carries the application settings and their validation result.
type SettingsLoaded struct {
	Settings   *domain.Settings
	Validation error
	Err        error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// LLMValidated carries the result of pinging the configured provider.
type LLMValidated struct {
	Err error
}
