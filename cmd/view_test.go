package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"difind.dev/pkg/difind/internal/controller"
)

func TestViewCmd_RequiresExactlyOneGraph(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no graph", []string{"view"}},
		{"two graphs", []string{"view", "a.yaml", "b.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := baseRootCmd()
			cmd.AddCommand(newViewCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
		})
	}
}

func TestViewCmd_PlainOutput(t *testing.T) {
	t.Cleanup(func() { plainViewFlag = false })

	output := &bytes.Buffer{}
	cmd := baseRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	// The plain path renders through the shared UI; point it at this
	// command's buffer for the duration of the test.
	originalUI := ui
	ui = controller.NewSimpleUI(cmd)
	t.Cleanup(func() { ui = originalUI })

	cmd.SetArgs([]string{"view", "--plain", filepath.Join("testdata", "sample.yaml")})

	err := cmd.Execute()
	require.NoError(t, err)

	got := output.String()
	for _, want := range []string{"compile units", "main.c", "S"} {
		assert.Contains(t, got, want)
	}
}

func TestViewCmd_PlainFailsForMissingGraph(t *testing.T) {
	t.Cleanup(func() { plainViewFlag = false })

	cmd := baseRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"view", "--plain", filepath.Join("testdata", "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
}
