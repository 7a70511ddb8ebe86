// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package archive unpacks downloaded dataset archives into the data
// directory.
//
// # Overview
//
// ExtractAll streams every entry of a zip archive onto disk, preserving
// the paths recorded in the archive. MovieLens archives carry their
// dataset directory as an entry prefix (ml-20m/ratings.csv), so
// extracting into the base data directory produces the expected
// dataset layout.
//
// Two properties matter to callers:
//
//   - Entries are written through temporary files and renamed into
//     place, so an interrupted run never leaves a truncated file under
//     a final entry name. Cache state is derived from file existence,
//     and a partial ratings file must not look like a complete one.
//   - The archive is never deleted here. Removing it after a
//     successful extraction is a state transition that belongs to the
//     acquisition loop.
//
// # Usage Example
//
//	files, err := archive.ExtractAll(ctx, "/data/ml-20m.zip", "/data")
//	if err != nil {
//		return fmt.Errorf("extract dataset: %w", err)
//	}
//	log.Info().Int("files", files).Msg("Dataset ready")
//
// # See Also
//
//   - internal/acquire: drives extraction as part of cache resolution
//   - internal/transport: produces the archives this package consumes
package archive
