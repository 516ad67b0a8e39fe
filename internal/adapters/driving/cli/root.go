// Package cli provides the docproof command tree.
package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docproof/internal/core/ports/driving"
	"github.com/custodia-labs/docproof/internal/logger"
)

// PortFinder returns the first bindable port in [startPort, endPort].
type PortFinder func(host string, startPort, endPort int) (int, error)

// Services holds everything the commands drive. Proofread is required by
// every command that runs the pipeline; the rest are optional.
type Services struct {
	Proofread driving.ProofreadService
	Settings  driving.SettingsService

	// Metrics is exposed on the web server's /metrics route.
	Metrics *prometheus.Registry

	// Tracing enables request spans in the web server.
	Tracing bool

	// FindPort lets serve step past a busy default port.
	FindPort PortFinder
}

var (
	proofreadService driving.ProofreadService
	settingsService  driving.SettingsService
	metricsRegistry  *prometheus.Registry
	tracingEnabled   bool
	findPort         PortFinder

	verbose bool
)

// SetServices injects the services used by all commands.
func SetServices(s Services) {
	proofreadService = s.Proofread
	settingsService = s.Settings
	metricsRegistry = s.Metrics
	tracingEnabled = s.Tracing
	findPort = s.FindPort
}

var rootCmd = &cobra.Command{
	Use:   "docproof",
	Short: "Proofread Google Docs with a language model",
	Long: `docproof fetches a Google Doc by its sharing link and asks a language model
to proofread it for grammar, clarity, and tone. The original and improved text
are shown side by side.

The document must be shared with "Anyone with the link can view", or with the
service account configured in GCP_CREDENTIALS.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command with ctx, which is cancelled on shutdown.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
