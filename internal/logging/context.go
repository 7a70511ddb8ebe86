// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// runIDKey is the context key for acquisition run IDs.
	runIDKey contextKey = "run_id"
)

// GenerateRunID creates a new unique run ID for one acquisition pass.
// Returns the first 8 characters of a UUID for readability.
func GenerateRunID() string {
	return uuid.New().String()[:8]
}

// ContextWithRunID returns a new context carrying the given run ID.
//
//	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// ContextWithNewRunID returns a context with a freshly generated run ID.
func ContextWithNewRunID(ctx context.Context) context.Context {
	return ContextWithRunID(ctx, GenerateRunID())
}

// RunIDFromContext retrieves the run ID from context.
// Returns empty string if not present.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns a logger with the context's run_id automatically added.
// This is the recommended way to log inside acquisition internals.
//
//	logging.Ctx(ctx).Info().Msg("Download complete")
//	// Output: {"level":"info","run_id":"abc12345","message":"Download complete"}
func Ctx(ctx context.Context) *zerolog.Logger {
	contextLogger := Logger()
	if runID := RunIDFromContext(ctx); runID != "" {
		contextLogger = contextLogger.With().Str("run_id", runID).Logger()
	}
	return &contextLogger
}

// CtxWith returns a logger context builder with the run_id pre-populated.
// Use this when you need to add fields beyond the standard context fields.
//
//	logger := logging.CtxWith(ctx).Str("dataset", name).Logger()
//	logger.Info().Msg("Resolving cache")
func CtxWith(ctx context.Context) zerolog.Context {
	logCtx := Logger().With()
	if runID := RunIDFromContext(ctx); runID != "" {
		logCtx = logCtx.Str("run_id", runID)
	}
	return logCtx
}

// WithComponent creates a child logger with a component field.
//
//	tLogger := logging.WithComponent("transport")
//	tLogger.Info().Msg("Starting download")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
