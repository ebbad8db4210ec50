package cli

import (
	"github.com/spf13/cobra"

	"github.com/777genius/gopync/pkg/notifier"
)

var removeCmd = &cobra.Command{
	Use:     "remove [group]",
	Aliases: []string{"rm"},
	Short:   "Remove delivered notifications by group ID (all when omitted)",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := ""
		if len(args) == 1 {
			group = args[0]
		}

		n, err := notifier.New()
		if err != nil {
			return err
		}

		proc, err := n.Remove(group)
		if err != nil {
			return err
		}
		logf(cmd, "remove dispatched, pid %d", proc.Pid())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
