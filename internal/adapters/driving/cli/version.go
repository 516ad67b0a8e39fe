package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, set with
//
//	-ldflags "-X github.com/custodia-labs/docproof/internal/adapters/driving/cli.version=v1.2.0
//	          -X github.com/custodia-labs/docproof/internal/adapters/driving/cli.commit=abc1234
//	          -X github.com/custodia-labs/docproof/internal/adapters/driving/cli.buildDate=2024-01-01"
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print docproof build information",
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), buildInfo())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}

func buildInfo() string {
	return fmt.Sprintf("docproof version %s\n  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
		version, commit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
