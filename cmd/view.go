package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"difind.dev/pkg/difind/internal/controller"
	"difind.dev/pkg/difind/internal/domain"
)

// plainViewFlag disables the interactive browser.
var plainViewFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <graph>",
		Short: "Browse collected debug-info nodes interactively",
		Long: `Collect all reachable debug-info nodes from a graph and browse them in an
interactive, filterable list. Use --plain to print tables instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			viewUI := ui
			if !plainViewFlag {
				viewUI = controller.NewTUI(os.Stdout)
			}

			viewWorkflow := domain.NewWorkflow(graphStore, reportStore, viewUI)

			return viewWorkflow.View(context.Background(), domain.ViewArgs{
				Path: args[0],
			})
		},
	}

	cmd.Flags().BoolVar(&plainViewFlag, plainFlagName, false, "print tables instead of the interactive browser")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
