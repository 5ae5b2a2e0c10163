/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recsum/pkg/logging"
	"github.com/NVIDIA/recsum/pkg/serializer"
)

// version is embedded at build time via ldflags.
var version = "dev"

// Shared flag constructors for commands that serialize a result. Flags
// carry parsed state in urfave/cli v3, so each command gets its own
// instance.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   "output format (json, yaml, table)",
	}
}

// usageError converts an invalid invocation into an exit-code-2 failure.
// Subcommand parse failures never reach the root command's OnUsageError,
// and required-flag checks bypass OnUsageError entirely, so every command
// routes its usage errors through here.
func usageError(err error) error {
	return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
}

// requireInput returns the input path flag value, or an exit-code-2 error
// when the flag was not supplied.
func requireInput(cmd *cli.Command) (string, error) {
	path := cmd.String("input")
	if path == "" {
		return "", usageError(fmt.Errorf("required flag %q not set", "input"))
	}
	return path, nil
}

// New constructs the root recsum command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "recsum",
		Usage:   "Validate and summarize JSON record files",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			processCmd(),
			validateCmd(),
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return usageError(err)
		},
		CommandNotFound: func(_ context.Context, _ *cli.Command, name string) {
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", name)
			cli.OsExiter(2)
		},
	}
}
