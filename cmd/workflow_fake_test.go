package cmd

import (
	"context"

	"difind.dev/pkg/difind/internal/domain"
)

// fakeWorkflow records the arguments each workflow entry point receives so
// command tests can assert flag plumbing without touching the filesystem.
type fakeWorkflow struct {
	dumpArgs   []domain.DumpArgs
	verifyArgs []domain.VerifyArgs
	viewArgs   []domain.ViewArgs
	err        error
}

func (f *fakeWorkflow) Dump(_ context.Context, args domain.DumpArgs) error {
	f.dumpArgs = append(f.dumpArgs, args)
	return f.err
}

func (f *fakeWorkflow) Verify(_ context.Context, args domain.VerifyArgs) error {
	f.verifyArgs = append(f.verifyArgs, args)
	return f.err
}

func (f *fakeWorkflow) View(_ context.Context, args domain.ViewArgs) error {
	f.viewArgs = append(f.viewArgs, args)
	return f.err
}

// swapWorkflow installs a fake workflow for the duration of a test.
func swapWorkflow(fake domain.Workflow) func() {
	original := workflow
	workflow = fake

	return func() { workflow = original }
}
