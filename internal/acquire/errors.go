// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package acquire

import "errors"

// Failure taxonomy for cache resolution. Every error returned by
// Resolve wraps exactly one of these sentinels, so callers can branch
// with errors.Is without parsing messages. The underlying cause stays
// reachable through errors.As.
var (
	// ErrStorage is returned when the local filesystem fails: the data
	// directory cannot be created or written, a downloaded archive
	// cannot be persisted, or a consumed archive cannot be removed.
	ErrStorage = errors.New("storage failure")

	// ErrTransport is returned when downloading the archive fails
	// before a complete copy reaches disk. No partial archive is left
	// behind, so the cache state is unchanged.
	ErrTransport = errors.New("transport failure")

	// ErrArchive is returned when a present archive cannot be
	// extracted. The offending archive is left in place for
	// inspection; delete it by hand to force a fresh download.
	ErrArchive = errors.New("archive extraction failure")

	// ErrDataFormat is returned when the ratings file exists but
	// cannot be decoded into a table.
	ErrDataFormat = errors.New("data format failure")

	// ErrConvergence is returned when one download and one extraction
	// were not enough to produce a loadable ratings file. It signals a
	// wrong archive layout or an interfering process, not a transient
	// fault.
	ErrConvergence = errors.New("cache resolution did not converge")
)
