// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library in a
// thread-safe singleton with human-readable error messages. It exists
// so configuration structs can declare their constraints as tags and
// report every violation at once instead of failing on the first.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - Built-in validator support (url, oneof, min, max, etc.)
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type Settings struct {
//	    URL       string `validate:"omitempty,url"`
//	    LogLevel  string `validate:"omitempty,oneof=debug info warn error"`
//	    RateLimit int64  `validate:"min=0"`
//	}
//
//	if err := validation.ValidateStruct(&settings); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
//
// A failing struct yields one ConfigValidationError whose message
// joins all field failures:
//
//	LogLevel must be one of: debug info warn error; RateLimit must be at least 0
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use. The
// underlying validator caches struct metadata, which is why a single
// shared instance is used instead of creating one per call.
//
// # See Also
//
//   - github.com/go-playground/validator/v10: underlying library
package validation
