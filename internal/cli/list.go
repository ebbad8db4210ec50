package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/777genius/gopync/pkg/notifier"
)

// listEntry is the JSON shape of one delivered notification. delivered_at is
// rendered through Timestamp.String, so unparseable values come out as their
// literal text.
type listEntry struct {
	Group       string `json:"group"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Message     string `json:"message"`
	DeliveredAt string `json:"delivered_at,omitempty"`
}

var listCmd = &cobra.Command{
	Use:     "list [group]",
	Aliases: []string{"ls"},
	Short:   "List delivered notifications by group ID (all when omitted)",
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

		records, err := n.List(group)
		if err != nil {
			return err
		}
		logf(cmd, "%d notification(s) listed", len(records))

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(cmd.OutOrStdout(), records)
		}
		return printTable(cmd.OutOrStdout(), records)
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func printJSON(w io.Writer, records []notifier.Record) error {
	entries := make([]listEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, listEntry{
			Group:       r.Group,
			Title:       r.Title,
			Subtitle:    r.Subtitle,
			Message:     r.Message,
			DeliveredAt: r.DeliveredAt.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func printTable(w io.Writer, records []notifier.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No notifications delivered.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tTITLE\tSUBTITLE\tMESSAGE\tDELIVERED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Group, r.Title, r.Subtitle, r.Message, r.DeliveredAt)
	}
	return tw.Flush()
}
