package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"difind.dev/pkg/difind/internal/controller"
	"difind.dev/pkg/difind/internal/domain"
)

func TestVerifyCmd_PassesPaths(t *testing.T) {
	fake := &fakeWorkflow{}
	t.Cleanup(swapWorkflow(fake))

	cmd := baseRootCmd()
	cmd.AddCommand(newVerifyCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"verify", "a.yaml", "b.yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.verifyArgs, 1)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, fake.verifyArgs[0].Paths)
}

func TestVerifyCmd_PropagatesError(t *testing.T) {
	fake := &fakeWorkflow{err: fmt.Errorf("2 malformed debug-info node(s)")}
	t.Cleanup(swapWorkflow(fake))

	cmd := baseRootCmd()
	cmd.AddCommand(newVerifyCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"verify", "a.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestVerifyCmd_EndToEnd(t *testing.T) {
	t.Run("well-formed graph passes", func(t *testing.T) {
		output := &bytes.Buffer{}
		cmd := baseRootCmd()
		cmd.AddCommand(newVerifyCmd())
		cmd.SetOut(output)
		cmd.SetErr(&bytes.Buffer{})

		t.Cleanup(swapWorkflow(domain.NewWorkflow(graphStore, reportStore, controller.NewSimpleUI(cmd))))

		cmd.SetArgs([]string{"verify", filepath.Join("testdata", "sample.yaml")})

		err := cmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, output.String(), "verified")
	})

	t.Run("malformed graph fails", func(t *testing.T) {
		output := &bytes.Buffer{}
		cmd := baseRootCmd()
		cmd.AddCommand(newVerifyCmd())
		cmd.SetOut(output)
		cmd.SetErr(&bytes.Buffer{})

		t.Cleanup(swapWorkflow(domain.NewWorkflow(graphStore, reportStore, controller.NewSimpleUI(cmd))))

		cmd.SetArgs([]string{"verify", filepath.Join("testdata", "malformed.yaml")})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, output.String(), "malformed")
		assert.Contains(t, output.String(), "bad")
	})
}
