// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

/*
Package transport downloads dataset archives over HTTP.

Downloads stream into a temporary file beside the destination and are
renamed into place only after the body has been fully read, so a failed
or cancelled download never leaves a partial archive at the destination
path. Resumable transfers are deliberately unsupported; a failure means
the next attempt starts clean.

# Error Classification

The two error types split failures by which side broke:

  - RequestError: request construction, connection, non-200 status, or
    a broken body stream (including context cancellation mid-read)
  - WriteError: temp file creation, disk writes, fsync, or the final
    rename

Callers map these onto their own error taxonomy with errors.As.

# Throttling

WithRateLimit paces body reads through a token bucket
(golang.org/x/time/rate), useful when sharing an uplink with
latency-sensitive traffic. The default is unthrottled.
*/
package transport
