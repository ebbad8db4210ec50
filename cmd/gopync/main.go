// ABOUTME: Command-line entry point for gopync.
// ABOUTME: Bare invocation fires a demonstration notification; subcommands expose notify/remove/list.

package main

import (
	"os"

	"github.com/777genius/gopync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
