// Package tui provides an interactive terminal user interface for docproof.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Proofread runs the link -> fetch -> proofread pipeline.
	Proofread driving.ProofreadService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(proofread driving.ProofreadService, settings driving.SettingsService) *Ports {
	return &Ports{
		Proofread: proofread,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Proofread == nil {
		return ErrMissingProofreadService
	}
	return nil
}
