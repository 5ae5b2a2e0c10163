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

	"github.com/NVIDIA/recsum/pkg/aggregator"
	"github.com/NVIDIA/recsum/pkg/record"
	"github.com/NVIDIA/recsum/pkg/serializer"
	"github.com/NVIDIA/recsum/pkg/validator"
)

func processCmd() *cli.Command {
	return &cli.Command{
		Name:                  "process",
		EnableShellCompletion: true,
		Usage:                 "Validate a JSON record file and print an aggregate summary",
		Description: `Reads a JSON file containing a list of records, validates each record
against the schema (integer id, non-empty name, numeric value), and emits
the aggregate summary as a single object:

  {"count": N, "total_value": X, "avg_value": Y}

Processing stops at the first invalid element and no partial summary is
emitted.

# Examples

Summarize a record file:
  recsum process --input records.json

Write the summary as YAML to a file:
  recsum process -i records.json --format yaml --output summary.yaml

Drop scratch records before aggregating:
  recsum process -i records.json --exclude 'tmp*' --exclude '*draft'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the input JSON file (a list of records, required)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "drop validated records whose name matches the wildcard pattern (can be repeated)",
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

			slog.Debug("processing input", "path", inputPath)

			elems, err := record.Load(inputPath)
			if err != nil {
				slog.Error("failed to load input", "error", err, "path", inputPath)
				return err
			}

			v := validator.New(validator.WithVersion(version))
			records := make([]record.Record, 0, len(elems))
			for i, elem := range elems {
				rec, err := v.ValidateRecord(elem)
				if err != nil {
					return fmt.Errorf("invalid record at index %d: %w", i, err)
				}
				records = append(records, *rec)
			}

			if patterns := cmd.StringSlice("exclude"); len(patterns) > 0 {
				before := len(records)
				records = record.Exclude(records, patterns)
				slog.Debug("excluded records",
					"patterns", patterns,
					"dropped", before-len(records))
			}

			summary := aggregator.Summarize(records)
			slog.Debug("aggregation complete",
				"count", summary.Count,
				"total_value", summary.TotalValue,
				"avg_value", summary.AvgValue)

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer closeSerializer(w)

			return w.Serialize(ctx, summary)
		},
	}
}
