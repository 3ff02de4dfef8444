package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tick-cli/internal/logging"
	"tick-cli/internal/store"
	"tick-cli/internal/tui"
)

// NewRootCmd builds the bare root command. There are no flags and no
// subcommands: running `tick` starts the interactive session, and any
// startup failure (unresolvable data dir, corrupt todo file) aborts before
// the loop with a non-zero exit.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tick",
		Short:        "A tiny terminal todo list",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open()
			if err != nil {
				return err
			}
			items, err := s.Load()
			if err != nil {
				return err
			}

			logger := logging.Open(s.LogPath())
			logger.Info("session start", "todos", len(items), "path", s.Path())

			if err := tui.Run(s, items, logger); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Thanks for using tick!")
			return nil
		},
	}
}
