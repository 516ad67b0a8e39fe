// Package mcp provides an MCP (Model Context Protocol) server adapter for docproof.
// It lets AI assistants proofread Google Docs through the same pipeline as the other surfaces.
package mcp

import "errors"

// ErrMissingProofreadService is returned when the proofread service is not provided.
var ErrMissingProofreadService = errors.New("mcp: proofread service is required")
