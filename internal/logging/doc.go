// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package logging provides centralized zerolog-based structured logging.
//
// The package wraps a single global zerolog.Logger behind leveled helper
// functions so that acquisition internals log consistently without each
// component carrying a logger field.
//
// # Quick Start
//
//	import "github.com/tomtom215/movielens/internal/logging"
//
//	// Initialize once, early
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("dataset", "ml-20m ratings").Msg("Cache hit")
//	logging.Error().Err(err).Msg("Download failed")
//
// # Configuration
//
//	Level  - trace, debug, info, warn, error (default: info)
//	Format - json, console (default: json)
//	Output - destination writer (default: os.Stderr)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().Str("path", p).Int("rows", n).Msg("loaded")  // Correct
//	logging.Info().Msgf("loaded %d rows from %s", n, p)         // Avoid
//
// # Testing
//
// Capture output with a test logger:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
package logging
