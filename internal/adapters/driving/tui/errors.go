package tui

import "errors"

// ErrMissingProofreadService is returned when the proofread service is not provided.
var ErrMissingProofreadService = errors.New("tui: proofread service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
