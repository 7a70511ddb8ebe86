// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package movielens

import "github.com/tomtom215/movielens/internal/acquire"

// Failure taxonomy for FetchML20MRatings. Every resolution failure
// wraps exactly one of these sentinels; test with errors.Is. The
// concrete cause remains reachable through errors.As.
var (
	// ErrStorage indicates the local filesystem failed: the data
	// directory could not be created, the archive could not be written
	// to disk, or a consumed archive could not be removed.
	ErrStorage = acquire.ErrStorage

	// ErrTransport indicates the archive download failed before a
	// complete copy reached disk. The cache is left unchanged, so the
	// fetch can simply be retried.
	ErrTransport = acquire.ErrTransport

	// ErrArchive indicates a downloaded archive could not be
	// extracted. The archive is kept on disk for inspection; remove it
	// to force a fresh download on the next fetch.
	ErrArchive = acquire.ErrArchive

	// ErrDataFormat indicates the ratings file could not be decoded,
	// or an explicitly supplied source path could not be loaded.
	ErrDataFormat = acquire.ErrDataFormat

	// ErrConvergence indicates one download and one extraction did not
	// yield a loadable ratings file. This usually means the archive
	// did not contain the expected dataset layout.
	ErrConvergence = acquire.ErrConvergence
)
