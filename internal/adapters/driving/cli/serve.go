package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docproof/internal/adapters/driving/web"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/logger"
)

// portSearchRange is how far past a busy configured port serve looks.
const portSearchRange = 100

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	Long: `Start the web UI and JSON API.

Routes:
  GET  /                 proofreading page
  POST /api/proofread    {"link": "..."} -> run as JSON
  GET  /healthz          liveness
  GET  /metrics          Prometheus metrics

Without --port the configured port (server.port, PORT, default 8501) is used,
moving to the next free port if it is busy.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (0 = configured port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if proofreadService == nil {
		return errors.New("proofread service not configured")
	}

	addr, err := resolveAddr(serveHost, servePort, cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	if settingsService != nil {
		if err := settingsService.ValidateLLMConfig(); err != nil {
			logger.Warn("LLM check failed: %v", err)
			cmd.PrintErrf("Warning: %v\n", err)
		}
	}

	server, err := web.NewServer(web.Config{
		Proofread: proofreadService,
		Registry:  metricsRegistry,
		AccessLog: cmd.ErrOrStderr(),
		Tracing:   tracingEnabled,
	})
	if err != nil {
		return fmt.Errorf("creating web server: %w", err)
	}

	cmd.Printf("docproof web UI listening on http://%s\n", addr)
	return server.Listen(cmd.Context(), addr)
}

// resolveAddr picks the listen address. An explicit port is used as is;
// otherwise the configured port is tried first, then the next free one.
func resolveAddr(host string, port int, explicit bool) (string, error) {
	if port == 0 {
		port = configuredPort()
	}

	if !explicit && findPort != nil {
		free, err := findPort(host, port, port+portSearchRange)
		if err != nil {
			return "", fmt.Errorf("finding a free port: %w", err)
		}
		if free != port {
			logger.Info("port %d is busy, using %d", port, free)
		}
		port = free
	}

	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}

func configuredPort() int {
	if settingsService == nil {
		return domain.DefaultServerPort
	}
	settings, err := settingsService.Get()
	if err != nil || settings.Server.Port == 0 {
		return domain.DefaultServerPort
	}
	return settings.Server.Port
}
