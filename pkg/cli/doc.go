// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the recsum tool.
//
// # Overview
//
// recsum validates JSON record files against a fixed schema and emits an
// aggregate summary. The input is a JSON list of objects, each with an
// integer id, a non-empty name, and a numeric value.
//
// # Commands
//
// process - Validate and summarize:
//
//	recsum process --input records.json
//	recsum process -i records.json --format yaml --output summary.yaml
//	recsum process -i records.json --exclude 'tmp*'
//
// Validates every element of the input list and, if all pass, prints the
// summary: {"count": N, "total_value": X, "avg_value": Y}. Processing
// stops at the first invalid element and no partial summary is emitted.
// The --exclude flag drops validated records by name (wildcard patterns)
// before aggregation.
//
// validate - Report per-record outcomes:
//
//	recsum validate --input records.json
//	recsum validate -i records.json --fail-on-error
//
// Unlike process, validate evaluates every element and reports all
// failures with their index and the violated rule. Use --fail-on-error
// for CI pipelines (non-zero exit when any record is invalid).
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  I/O, parse, or validation error
//	2  Invalid or unrecognized command invocation
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/record - Input loading, decoding, and name filtering
//   - pkg/validator - Per-record schema enforcement
//   - pkg/aggregator - Summary computation
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/recsum/pkg/cli.version=1.0.0'"
package cli
