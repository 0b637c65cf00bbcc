package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grepnav/internal/controller"
	"github.com/mouse-blink/grepnav/internal/domain"
	m "github.com/mouse-blink/grepnav/internal/model"
)

var searchExtFlag string
var searchCaseFlag bool
var searchArgsFlag string
var searchScopeFlags []string
var searchDryRunFlag bool

// searchCmd represents the search command.
var searchCmd = newSearchCmd()

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query> [root]",
		Short: "Search a project and print the matches grouped by file",
		Long: `Search runs ripgrep once over the root (or the --scope paths below it)
and prints the matches grouped by file, in the order ripgrep reported them.

On a terminal the interactive UI starts with the query already run.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := isTTY(cmd.OutOrStdout()) && !searchDryRunFlag

			env, err := loadEnvironment(cmd, interactive)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := cmd.Context()
			session := env.session

			if err := session.ChooseRoot(ctx, rootArg(args, 1)); err != nil {
				return err
			}

			if err := applyScope(session, searchScopeFlags); err != nil {
				return err
			}

			opts := searchOptions(cmd, env, args[0])
			ui := newUI(cmd, interactive)
			defer ui.Close()

			if searchDryRunFlag {
				ui.DisplayPreview(session.Searcher.Preview(opts))
				return nil
			}

			if interactive {
				return ui.Start(
					controller.WithContext(ctx),
					controller.WithSession(session),
					controller.WithSearchDefaults(opts),
					controller.WithQuery(opts.Query),
				)
			}

			if err := ui.Start(controller.WithContext(ctx), controller.WithSession(session)); err != nil {
				return err
			}

			outcome, err := session.Search(ctx, opts)
			if err != nil {
				return err
			}

			return outcome.Err
		},
	}

	cmd.Flags().StringVarP(&searchExtFlag, "ext", "e", "", "comma separated file extensions to search (e.g. go,md)")
	cmd.Flags().BoolVarP(&searchCaseFlag, "case-sensitive", "c", false, "match case exactly")
	cmd.Flags().StringVar(&searchArgsFlag, "args", "", "extra ripgrep arguments, split on whitespace")
	cmd.Flags().StringArrayVarP(&searchScopeFlags, "scope", "s", nil, "limit the search to this path below the root (can be repeated)")
	cmd.Flags().BoolVar(&searchDryRunFlag, "dry-run", false, "print the ripgrep command instead of running it")

	return cmd
}

// searchOptions merges the config defaults with the flags that were set.
func searchOptions(cmd *cobra.Command, env *environment, query string) domain.SearchOptions {
	opts := env.searchDefaults()
	opts.Query = query

	if cmd.Flags().Changed("ext") {
		opts.Extensions = searchExtFlag
	}

	if cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = searchCaseFlag
	}

	if cmd.Flags().Changed("args") {
		opts.ExtraArgs = searchArgsFlag
	}

	return opts
}

// applyScope checks each scope path, resolved against the root.
func applyScope(session *domain.Session, scopes []string) error {
	root := session.Root()

	for _, scope := range scopes {
		path := m.Path(scope)
		if !filepath.IsAbs(scope) {
			path = root.Join(scope)
		}

		path = path.Clean()
		if !path.Within(root) {
			return fmt.Errorf("scope %s is outside root %s", scope, root)
		}

		session.Scope.Check(path)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
