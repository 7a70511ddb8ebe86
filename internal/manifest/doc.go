// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package manifest reads and writes acquisition receipts.
//
// A manifest is written into the dataset directory after a successful
// extraction and records where the data came from and when. It exists
// for provenance logging only; cache state decisions never consult it.
package manifest
