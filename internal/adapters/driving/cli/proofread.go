package cli

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
)

var proofreadJSON bool

var proofreadCmd = &cobra.Command{
	Use:   "proofread <link>",
	Short: "Proofread a Google Doc",
	Long: `Fetch the Google Doc behind <link>, proofread it, and print the original
and improved text.

Examples:
  docproof proofread https://docs.google.com/document/d/1AbC.../edit
  docproof proofread --json https://docs.google.com/document/d/1AbC.../edit`,
	Args: cobra.ExactArgs(1),
	RunE: runProofread,
}

func init() {
	proofreadCmd.Flags().BoolVar(&proofreadJSON, "json", false, "Print the run as JSON")
	rootCmd.AddCommand(proofreadCmd)
}

// runOutput is the --json form of a run.
type runOutput struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	DocumentID string `json:"document_id,omitempty"`
	Original   string `json:"original,omitempty"`
	Revised    string `json:"revised,omitempty"`
	Model      string `json:"model,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

func runProofread(cmd *cobra.Command, args []string) error {
	if proofreadService == nil {
		return errors.New("proofread service not configured")
	}

	var observer driving.RunObserver
	if !proofreadJSON {
		observer = func(run domain.Run) {
			switch run.State {
			case domain.RunFetching:
				cmd.PrintErrln("Fetching document...")
			case domain.RunProofreading:
				cmd.PrintErrf("Proofreading with %s...\n", run.Model)
			}
		}
	}

	run := proofreadService.Run(cmd.Context(), args[0], observer)

	if proofreadJSON {
		if err := writeRunJSON(cmd, run); err != nil {
			return err
		}
	} else {
		printRun(cmd, run)
	}

	if run.State == domain.RunFailed {
		return run.Err
	}
	return nil
}

func printRun(cmd *cobra.Command, run *domain.Run) {
	if run.HasOriginal() {
		printSection(cmd, "Original Text", run.Original.String())
	}
	if run.HasRevised() {
		printSection(cmd, "Improved Text", run.Revised.String())
	}
}

func printSection(cmd *cobra.Command, title, text string) {
	cmd.Println(title)
	cmd.Println(strings.Repeat("=", len(title)))
	cmd.Println(text)
	cmd.Println()
}

func writeRunJSON(cmd *cobra.Command, run *domain.Run) error {
	out := runOutput{
		ID:         run.ID,
		State:      run.State.String(),
		DocumentID: run.Reference.String(),
		Model:      run.Model,
		Error:      run.Message(),
		DurationMS: run.Duration().Milliseconds(),
	}
	if run.HasOriginal() {
		out.Original = run.Original.String()
	}
	if run.HasRevised() {
		out.Revised = run.Revised.String()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
