package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docproof/internal/adapters/driving/tui"
	"github.com/custodia-labs/docproof/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [link]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for docproof.

Paste a Google Docs link and press Enter. The original text appears as soon
as the document is fetched; the improved text follows once the model answers.
Pass a link as an argument to start proofreading right away.

Controls:
  Enter    - Proofread the link
  Tab      - Switch between link and text panes
  ↑/k, ↓/j - Scroll the focused pane
  n        - New link
  Esc      - Back
  ?        - Help (from the menu)
  Ctrl+C   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(proofreadService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if len(args) == 1 {
		app.WithInitialLink(args[0])
	}

	// Log lines would tear the alt screen.
	previous := logger.Output()
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(previous)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
