package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"difind.dev/pkg/difind/internal/controller"
	"difind.dev/pkg/difind/internal/domain"
)

func TestDumpCmd_NoSave(t *testing.T) {
	fake := &fakeWorkflow{}
	t.Cleanup(swapWorkflow(fake))
	t.Cleanup(func() { noSaveFlag = false })

	cmd := baseRootCmd()
	cmd.AddCommand(newDumpCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "--no-save", "a.yaml", "b.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.dumpArgs, 1)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, fake.dumpArgs[0].Paths)
	assert.Empty(t, fake.dumpArgs[0].ReportsDir)
}

func TestDumpCmd_DefaultReportsDir(t *testing.T) {
	fake := &fakeWorkflow{}
	t.Cleanup(swapWorkflow(fake))
	t.Cleanup(func() { noSaveFlag = false })

	cmd := baseRootCmd()
	cmd.AddCommand(newDumpCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "a.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.dumpArgs, 1)
	assert.Equal(t, defaultReportsDir, fake.dumpArgs[0].ReportsDir)
}

func TestDumpCmd_RequiresArgs(t *testing.T) {
	fake := &fakeWorkflow{}
	t.Cleanup(swapWorkflow(fake))

	cmd := baseRootCmd()
	cmd.AddCommand(newDumpCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Empty(t, fake.dumpArgs)
}

func TestDumpCmd_EndToEnd(t *testing.T) {
	t.Cleanup(func() { noSaveFlag = false })

	output := &bytes.Buffer{}
	cmd := baseRootCmd()
	cmd.AddCommand(newDumpCmd())
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	t.Cleanup(swapWorkflow(domain.NewWorkflow(graphStore, reportStore, controller.NewSimpleUI(cmd))))

	cmd.SetArgs([]string{"dump", "--no-save", filepath.Join("testdata", "sample.yaml")})

	err := cmd.Execute()
	require.NoError(t, err)

	got := output.String()
	for _, want := range []string{"compile units", "main.c", "main", "S", "structure_type", "_g"} {
		assert.Contains(t, got, want)
	}
}
