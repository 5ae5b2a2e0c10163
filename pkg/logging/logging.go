/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide slog handler.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog handler. Logs go to stderr so they never
// mix with serialized results on stdout. The LOG_LEVEL environment
// variable overrides the level when it parses as a slog level.
func Setup(debug, jsonFormat bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(env)); err == nil {
			level = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
