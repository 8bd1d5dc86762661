package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"difind.dev/pkg/difind/internal/domain"
)

// noSaveFlag disables report persistence for the dump command.
var noSaveFlag bool

// dumpCmd represents the dump command.
var dumpCmd = newDumpCmd()

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [graphs...]",
		Short: "Collect and print all reachable debug-info nodes",
		Long:  dumpLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reportsDir := viper.GetString(outputFlagName)
			if noSaveFlag {
				reportsDir = ""
			}

			return workflow.Dump(context.Background(), domain.DumpArgs{
				Paths:      args,
				ReportsDir: reportsDir,
			})
		},
	}

	cmd.Flags().BoolVar(&noSaveFlag, "no-save", false, "print collections without writing report files")

	return cmd
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
