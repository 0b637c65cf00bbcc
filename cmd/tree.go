package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grepnav/internal/domain"
)

var treeDepthFlag int

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [root]",
		Short: "Print the directory tree as grepnav loads it",
		Long: `Tree loads the root and expands directories down to --depth levels, one
listing per directory, then prints the visible entries.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if treeDepthFlag < 1 {
				return fmt.Errorf("depth must be at least 1, got %d", treeDepthFlag)
			}

			env, err := loadEnvironment(cmd, false)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := cmd.Context()
			session := env.session

			if err := session.ChooseRoot(ctx, rootArg(args, 0)); err != nil {
				return err
			}

			if err := expandTo(cmd, session.Tree, treeDepthFlag); err != nil {
				return err
			}

			ui := newUI(cmd, false)
			defer ui.Close()

			return ui.DisplayTree(session.Root(), session.Tree.Visible())
		},
	}

	cmd.Flags().IntVarP(&treeDepthFlag, "depth", "d", 1, "number of directory levels to show")

	return cmd
}

// expandTo expands every directory above depth, one level at a time.
func expandTo(cmd *cobra.Command, tree *domain.Tree, depth int) error {
	for level := 0; level < depth-1; level++ {
		for _, node := range tree.Visible() {
			if node.Depth != level || !node.IsDir || node.Expanded {
				continue
			}

			if err := tree.Expand(cmd.Context(), node.Path); err != nil {
				return err
			}
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
