/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// stubExiter keeps exit-coder handling from terminating the test binary
// and restores the real exiter afterwards.
func stubExiter(t *testing.T) {
	t.Helper()
	prev := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = prev })
}

func TestInvalidInvocation_ExitCode2(t *testing.T) {
	stubExiter(t)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "process missing required input",
			args: []string{"process"},
		},
		{
			name: "validate missing required input",
			args: []string{"validate"},
		},
		{
			name: "process undefined flag",
			args: []string{"process", "-i", "records.json", "--badflag"},
		},
		{
			name: "validate undefined flag",
			args: []string{"validate", "-i", "records.json", "--badflag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCmd(t, tt.args...)
			require.Error(t, err)

			var coder cli.ExitCoder
			require.True(t, errors.As(err, &coder), "usage errors must carry an exit code, got: %v", err)
			assert.Equal(t, 2, coder.ExitCode())
		})
	}
}

func TestRuntimeErrors_NotExitCoders(t *testing.T) {
	// I/O and validation failures map to exit 1 in main, so they must not
	// carry a usage exit code.
	err := runCmd(t, "process", "-i", "does-not-exist.json")
	require.Error(t, err)

	var coder cli.ExitCoder
	assert.False(t, errors.As(err, &coder), "runtime errors must not carry a usage exit code")
}
