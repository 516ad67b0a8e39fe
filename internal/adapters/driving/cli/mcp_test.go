package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/docproof/internal/adapters/driving/mcp"
)

func TestMCPCmd_ServeRegistered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Name() == "serve" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMCPServe_RequiresProofreadService(t *testing.T) {
	withServices(t, Services{})

	_, _, err := execute(t, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingProofreadService)
}
