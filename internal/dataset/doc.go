// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package dataset describes downloadable datasets and resolves their
// on-disk cache layout.
//
// The base data directory is chosen by precedence: explicit
// configuration, the MOVIELENS_DATA environment variable, then
// ~/movielens_data. Locate creates the base directory but never the
// dataset directory underneath it; that one appears only when an
// archive is extracted, which is how the acquirer tells cache states
// apart.
package dataset
