// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const incrementPlan = `
name: increment twice
steps:
  - description: first
    method: increment
  - description: second
    method: increment
  - description: read
    method: get_value
    require:
      result:
        operator: "=="
        value: "2"
`

func execute(t *testing.T, dir string, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func localValue(t *testing.T) int8 {
	t.Helper()

	n, err := newNode()
	require.NoError(t, err)
	defer n.close()

	a, err := actor()
	require.NoError(t, err)
	cli := &localClient{rt: n.runtime, contract: n.config.GetContract(), actor: a}
	v, err := cli.GetValue(context.Background())
	require.NoError(t, err)
	return v
}

func TestLocalCommandsPersist(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	execute(t, dir, "", "increment")
	execute(t, dir, "", "increment")
	execute(t, dir, "", "decrement")
	require.Equal(int8(1), localValue(t))

	execute(t, dir, "", "reset")
	require.Zero(localValue(t))
}

func TestRunPlanFromStdin(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	out := execute(t, dir, incrementPlan, "run", "-")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(lines, 3)
	require.Contains(lines[0], `"method":"increment"`)
	require.Contains(lines[2], `"method":"get_value"`)
	require.Equal(int8(2), localValue(t))
}

func TestRemoteRequiresSubcommand(t *testing.T) {
	rootCmd.SetArgs([]string{"remote"})
	require.ErrorIs(t, rootCmd.Execute(), ErrMissingSubcommand)
}
