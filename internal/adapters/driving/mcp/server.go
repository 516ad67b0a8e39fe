package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docproof/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// EndpointPath is where RunHTTP serves the streamable MCP handler.
const EndpointPath = "/mcp"

const shutdownTimeout = 5 * time.Second

// Server exposes the proofreading pipeline to MCP clients.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "docproof",
		Title:   "Google Docs Proofreader",
		Version: Version,
	}
	opts := &mcp.ServerOptions{Instructions: instructions(ports.Proofread.ModelName())}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells the client how to use the proofreader.
func instructions(model string) string {
	text := "Call the proofread tool with a Google Docs sharing link to get the document's " +
		"original text and a proofread revision. The document must be shared with " +
		"\"Anyone with the link can view\". Read " + uriScheme + "documents/{documentId} " +
		"for the revised text alone."
	if model != "" {
		text += " Revisions are written by " + model + "."
	}
	return text
}

// Run serves a single client over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP routes for the streamable transport: the MCP
// endpoint at EndpointPath and a liveness probe at /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(EndpointPath, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// RunHTTP serves Handler on addr until ctx is cancelled, then drains
// in-flight requests for up to shutdownTimeout.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutdown: %v", err)
		}
	}()

	logger.Debug("mcp: serving %s%s", addr, EndpointPath)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
