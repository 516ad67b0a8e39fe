package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docproof resources.
	uriScheme = "docproof://"
)

// documentIDPattern matches a whole Google Docs document ID.
var documentIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active language model and credential status",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "proofread-document",
		Description: "Proofread text of a Google Doc by document ID",
		MIMEType:    "text/plain",
	}, s.handleDocumentResource)
}

// settingsInfo is the settings resource body. API keys are never exposed.
type settingsInfo struct {
	Provider          string `json:"provider"`
	Model             string `json:"model"`
	LLMConfigured     bool   `json:"llm_configured"`
	GoogleConfigured  bool   `json:"google_configured"`
	ValidationMessage string `json:"validation,omitempty"`
}

// handleSettingsResource returns the active configuration.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := settingsInfo{Model: s.ports.Proofread.ModelName()}

	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		info.Provider = settings.LLM.Provider.String()
		info.LLMConfigured = settings.LLM.IsConfigured()
		info.GoogleConfigured = settings.Google.IsConfigured()
		if err := s.ports.Settings.Validate(); err != nil {
			info.ValidationMessage = err.Error()
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource proofreads the document named in the URI.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run := s.ports.Proofread.Run(ctx, domain.DocumentReference(docID).URL(), nil)
	if run.State != domain.RunDone {
		return nil, fmt.Errorf("proofreading %s: %w", docID, run.Err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     run.Revised.String(),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like docproof://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if !documentIDPattern.MatchString(id) {
		return ""
	}
	return id
}
