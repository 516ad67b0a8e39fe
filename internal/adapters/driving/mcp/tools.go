package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// ProofreadInput is the input schema for the proofread tool.
type ProofreadInput struct {
	Link string `json:"link" jsonschema:"a Google Docs link shared with 'Anyone with the link can view'"`
}

// ProofreadOutput is the output schema for the proofread tool.
type ProofreadOutput struct {
	DocumentID string `json:"document_id,omitempty"`
	State      string `json:"state"`
	Original   string `json:"original,omitempty"`
	Revised    string `json:"revised,omitempty"`
	Model      string `json:"model,omitempty"`
	Error      string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "proofread",
		Description: "Fetch a Google Doc and return its text with grammar, clarity and tone edits",
	}, s.handleProofread)
}

// handleProofread handles the proofread tool invocation. A failed run is
// reported as a tool error carrying the user-facing message, not as a
// protocol error.
func (s *Server) handleProofread(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProofreadInput,
) (*mcp.CallToolResult, ProofreadOutput, error) {
	run := s.ports.Proofread.Run(ctx, input.Link, nil)
	output := toOutput(run)

	if run.State == domain.RunFailed {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: output.Error}},
		}, output, nil
	}

	return nil, output, nil
}

func toOutput(run *domain.Run) ProofreadOutput {
	output := ProofreadOutput{
		DocumentID: run.Reference.String(),
		State:      run.State.String(),
		Model:      run.Model,
		Error:      run.Message(),
	}
	if run.HasOriginal() {
		output.Original = run.Original.String()
	}
	if run.HasRevised() {
		output.Revised = run.Revised.String()
	}
	return output
}
