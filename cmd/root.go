// Package cmd provides the root command and CLI setup for difind.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"difind.dev/pkg/difind/internal/adapter"
	"difind.dev/pkg/difind/internal/controller"
	"difind.dev/pkg/difind/internal/domain"
)

var graphStore domain.GraphStore
var reportStore domain.ReportStore
var ui domain.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that write
// reports.
var reportsOutputDirFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	graphStore = adapter.NewGraphFileStore()
	reportStore = adapter.NewReportFileStore()
	ui = controller.NewSimpleUI(rootCmd)
	workflow = domain.NewWorkflow(graphStore, reportStore, ui)
}

const graphFilesHelp = `Graph files are YAML fixtures describing a module's metadata nodes,
compile-unit anchors and per-instruction debug attachments.`

const rootLongDescription = `Difind inspects debug-info metadata graphs: it walks every compile unit
and instruction attachment, collects each reachable node exactly once and
reports the compile units, subprograms, global variables, types and scopes
it found.

` + graphFilesHelp

const dumpLongDescription = `Collect all reachable debug-info nodes from the given graphs and print
the five collections in first-discovery order.

` + graphFilesHelp

const verifyLongDescription = `Collect all reachable debug-info nodes from the given graphs and run the
structural well-formedness check on every node, reporting each malformed
one.

` + graphFilesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difind",
		Short: "Debug-info metadata graph inspector",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for collection reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file location (defaults to config log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
