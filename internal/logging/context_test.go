// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRunID(t *testing.T) {
	t.Parallel()

	id := GenerateRunID()
	if len(id) != 8 {
		t.Errorf("expected 8 character run ID, got %d: %s", len(id), id)
	}

	other := GenerateRunID()
	if id == other {
		t.Errorf("expected unique run IDs, got %s twice", id)
	}
}

func TestRunIDFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		ctx := ContextWithRunID(context.Background(), "abc12345")
		if got := RunIDFromContext(ctx); got != "abc12345" {
			t.Errorf("got run ID %q, want %q", got, "abc12345")
		}
	})

	t.Run("missing returns empty", func(t *testing.T) {
		if got := RunIDFromContext(context.Background()); got != "" {
			t.Errorf("got run ID %q, want empty", got)
		}
	})

	t.Run("new run id is populated", func(t *testing.T) {
		ctx := ContextWithNewRunID(context.Background())
		if got := RunIDFromContext(ctx); got == "" {
			t.Error("expected generated run ID, got empty")
		}
	})
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(zerolog.New(&buf))

	ctx := ContextWithRunID(context.Background(), "run00001")
	Ctx(ctx).Info().Msg("with run id")

	output := buf.String()
	if !strings.Contains(output, `"run_id":"run00001"`) {
		t.Errorf("expected run_id field in output: %s", output)
	}
}

func TestCtxWithoutRunID(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(zerolog.New(&buf))

	Ctx(context.Background()).Info().Msg("no run id")

	output := buf.String()
	if strings.Contains(output, "run_id") {
		t.Errorf("expected no run_id field in output: %s", output)
	}
}

func TestCtxWith(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(zerolog.New(&buf))

	ctx := ContextWithRunID(context.Background(), "run00002")
	logger := CtxWith(ctx).Str("dataset", "ml-20m ratings").Logger()
	logger.Info().Msg("combined fields")

	output := buf.String()
	if !strings.Contains(output, "run00002") {
		t.Errorf("expected run ID in output: %s", output)
	}
	if !strings.Contains(output, "ml-20m ratings") {
		t.Errorf("expected dataset field in output: %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(zerolog.New(&buf))

	logger := WithComponent("transport")
	logger.Info().Msg("component log")

	output := buf.String()
	if !strings.Contains(output, `"component":"transport"`) {
		t.Errorf("expected component field in output: %s", output)
	}
}
