package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/777genius/gopync/pkg/notifier"
)

// Version is set via ldflags during release builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gopync version %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "bundled terminal-notifier: %s\n", notifier.BundledVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "go version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
