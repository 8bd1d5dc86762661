package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"difind.dev/pkg/difind/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [graphs...]",
		Short: "Check structural well-formedness of collected nodes",
		Long:  verifyLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Verify(context.Background(), domain.VerifyArgs{
				Paths: args,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
