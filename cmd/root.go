// Package cmd provides the root command and CLI setup for grepnav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grepnav/internal/controller"
	"github.com/mouse-blink/grepnav/internal/logger"
)

var configFlag string
var logLevelFlag string
var logFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grepnav [root]",
		Short: "Interactive ripgrep front-end with a lazy directory tree",
		Long: `grepnav searches a project with ripgrep and shows the matches grouped by
file next to a lazily loaded directory tree.

Check directories or files in the tree to narrow the search scope, open a
match to jump to it in your editor, and reveal any result in the tree.

When the output is not a terminal, the top level of the root is printed
instead of starting the interactive UI.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := isTTY(cmd.OutOrStdout())

			env, err := loadEnvironment(cmd, interactive)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.session.ChooseRoot(cmd.Context(), rootArg(args, 0)); err != nil {
				return err
			}

			ui := newUI(cmd, interactive)
			defer ui.Close()

			if !interactive {
				return ui.DisplayTree(env.session.Root(), env.session.Tree.Visible())
			}

			return ui.Start(
				controller.WithContext(cmd.Context()),
				controller.WithSession(env.session),
				controller.WithSearchDefaults(env.searchDefaults()),
			)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is the per-user grepnav/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write logs to this file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// rootArg returns args[i] or the working directory when it is absent.
func rootArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return wd
}

func validateLogLevel(level string) error {
	if level != "" && !logger.ValidLevel(level) {
		return fmt.Errorf("unknown log level %q", level)
	}

	return nil
}
