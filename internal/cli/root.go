// Package cli provides the cobra commands for the gopync tool: a bare
// invocation fires one demonstration notification, and the notify, remove
// and list subcommands expose the full wrapper.
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/777genius/gopync/internal/config"
)

// projectURL is what the demonstration notification opens when clicked.
const projectURL = "https://github.com/777genius/gopync"

var rootCmd = &cobra.Command{
	Use:   "gopync",
	Short: "Send macOS notifications through terminal-notifier",
	Long: `gopync is a thin wrapper around the macOS terminal-notifier binary.

Run with no arguments to fire a demonstration notification, or use the
notify, remove and list subcommands.`,
	Example: `  # Fire a demonstration notification
  gopync

  # Send a notification
  gopync notify "Build finished" --title CI --sound Ping

  # Remove all notifications previously sent with a group ID
  gopync remove builds

  # List delivered notifications
  gopync list --json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendNotification(cmd, "Notification from gopync", notifyFlags{
			open: projectURL,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default ~/.config/gopync/config.json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves the --config flag and loads the CLI configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// logf prints a diagnostic line when --verbose is set.
func logf(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.Printf("[gopync] "+format, args...)
	}
}
