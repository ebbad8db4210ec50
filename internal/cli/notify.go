package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/777genius/gopync/internal/config"
	"github.com/777genius/gopync/pkg/notifier"
)

// notifyFlags carries the per-invocation notification settings, after flag
// parsing but before config defaults are folded in.
type notifyFlags struct {
	title    string
	subtitle string
	group    string
	sound    string
	activate string
	open     string
	execute  string
	wait     bool
}

var notifyCmd = &cobra.Command{
	Use:     "notify <message>",
	Aliases: []string{"n"},
	Short:   "Send a user notification",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := notifyFlags{}
		flags.title, _ = cmd.Flags().GetString("title")
		flags.subtitle, _ = cmd.Flags().GetString("subtitle")
		flags.group, _ = cmd.Flags().GetString("group")
		flags.sound, _ = cmd.Flags().GetString("sound")
		flags.activate, _ = cmd.Flags().GetString("activate")
		flags.open, _ = cmd.Flags().GetString("open")
		flags.execute, _ = cmd.Flags().GetString("execute")
		flags.wait, _ = cmd.Flags().GetBool("wait")
		return sendNotification(cmd, args[0], flags)
	},
}

func init() {
	notifyCmd.Flags().StringP("title", "t", "", "Notification title")
	notifyCmd.Flags().String("subtitle", "", "Notification subtitle")
	notifyCmd.Flags().StringP("group", "g", "", "Group ID for later remove/list")
	notifyCmd.Flags().StringP("sound", "s", "", "System sound to play")
	notifyCmd.Flags().String("activate", "", "Bundle ID to activate on click")
	notifyCmd.Flags().String("open", "", "URL to open on click")
	notifyCmd.Flags().String("execute", "", "Shell command to run on click")
	notifyCmd.Flags().BoolP("wait", "w", false, "Block until terminal-notifier exits")

	rootCmd.AddCommand(notifyCmd)
}

// sendNotification folds config defaults into the flags and dispatches the
// notification, falling back to beeep when configured and no
// terminal-notifier binary could be resolved.
func sendNotification(cmd *cobra.Command, message string, flags notifyFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	applyDefaults(&flags, cfg)

	n, err := notifier.New()
	if err != nil {
		if cfg.Fallback && resolutionFailed(err) {
			logf(cmd, "resolution failed (%v), falling back to beeep", err)
			return beeep.Notify(flags.title, message, "")
		}
		return err
	}
	logf(cmd, "resolved terminal-notifier at %s", n.Path())

	opts := buildOptions(flags)

	// A bounded wait dispatches without blocking and then waits on the
	// handle, so the timeout can interrupt it.
	if flags.wait && cfg.WaitTimeoutSeconds > 0 {
		proc, err := n.Notify(message, opts...)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.WaitTimeoutSeconds)*time.Second)
		defer cancel()

		if err := proc.WaitContext(ctx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				_ = proc.Kill()
				return fmt.Errorf("terminal-notifier did not exit within %ds", cfg.WaitTimeoutSeconds)
			}
			return err
		}
		if code := proc.ExitCode(); code != 0 {
			return &notifier.SubprocessError{ExitCode: code, Output: proc.Output()}
		}
		return nil
	}

	if flags.wait {
		opts = append(opts, notifier.Wait())
	}
	_, err = n.Notify(message, opts...)
	return err
}

// applyDefaults fills empty flags from the config and applies the unique
// group suffix.
func applyDefaults(flags *notifyFlags, cfg *config.Config) {
	if flags.title == "" {
		flags.title = cfg.DefaultTitle
	}
	if flags.sound == "" {
		flags.sound = cfg.DefaultSound
	}
	if flags.group == "" {
		flags.group = cfg.DefaultGroup
	}
	if cfg.UniqueGroup {
		prefix := flags.group
		if prefix == "" {
			prefix = "gopync"
		}
		flags.group = prefix + "-" + uuid.NewString()
	}
}

// buildOptions translates the flags into notifier options, in a fixed order
// so repeated invocations produce identical argument vectors.
func buildOptions(flags notifyFlags) []notifier.Option {
	var opts []notifier.Option
	if flags.title != "" {
		opts = append(opts, notifier.Title(flags.title))
	}
	if flags.subtitle != "" {
		opts = append(opts, notifier.Subtitle(flags.subtitle))
	}
	if flags.group != "" {
		opts = append(opts, notifier.Group(flags.group))
	}
	if flags.sound != "" {
		opts = append(opts, notifier.Sound(flags.sound))
	}
	if flags.activate != "" {
		opts = append(opts, notifier.Activate(flags.activate))
	}
	if flags.open != "" {
		opts = append(opts, notifier.Open(flags.open))
	}
	if flags.execute != "" {
		opts = append(opts, notifier.Execute(flags.execute))
	}
	return opts
}

// resolutionFailed reports whether err means "no usable binary" as opposed to
// a dispatch failure.
func resolutionFailed(err error) bool {
	var instErr *notifier.InstallationError
	var permErr *notifier.PermissionError
	return errors.Is(err, notifier.ErrUnsupportedPlatform) ||
		errors.As(err, &instErr) ||
		errors.As(err, &permErr)
}
