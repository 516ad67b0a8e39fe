package mcp

import (
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Proofread runs the link -> fetch -> proofread pipeline.
	Proofread driving.ProofreadService

	// Settings exposes the active configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Proofread == nil {
		return ErrMissingProofreadService
	}
	return nil
}
