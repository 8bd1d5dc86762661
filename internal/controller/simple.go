package controller

import (
	"context"

	"github.com/spf13/cobra"

	"difind.dev/pkg/difind/internal/model"
)

// SimpleUI renders reports as plain tables on the command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReports prints every report's collections.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := renderReport(s.cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	}

	return nil
}

// DisplayVerification prints the malformed nodes of every report.
func (s *SimpleUI) DisplayVerification(ctx context.Context, reports []model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := renderVerification(s.cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	}

	return nil
}

// Browse falls back to plain rendering; interactive browsing needs the TUI.
func (s *SimpleUI) Browse(ctx context.Context, reports []model.Report) error {
	return s.DisplayReports(ctx, reports)
}
