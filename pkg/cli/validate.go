/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recsum/pkg/record"
	"github.com/NVIDIA/recsum/pkg/serializer"
	"github.com/NVIDIA/recsum/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Report per-record validation results for a JSON record file",
		Description: `Validates every element of the input list against the record schema and
reports all outcomes, including every failure with its index and the
violated rule. Unlike process, validate does not stop at the first
invalid element and does not aggregate.

# Examples

Inspect a record file:
  recsum validate --input records.json

Gate a CI pipeline on validity:
  recsum validate -i records.json --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the input JSON file (a list of records, required)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when any record fails validation",
			},
			outputFlag(),
			formatFlag(),
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return usageError(err)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputPath, err := requireInput(cmd)
			if err != nil {
				return err
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			slog.Debug("validating input", "path", inputPath)

			elems, err := record.Load(inputPath)
			if err != nil {
				slog.Error("failed to load input", "error", err, "path", inputPath)
				return err
			}

			v := validator.New(validator.WithVersion(version))
			result, err := v.Validate(ctx, elems)
			if err != nil {
				return err
			}

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer closeSerializer(w)

			if err := w.Serialize(ctx, result); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && result.Summary.Failed > 0 {
				return fmt.Errorf("validation failed: %d of %d records invalid",
					result.Summary.Failed, result.Summary.Total)
			}
			return nil
		},
	}
}
