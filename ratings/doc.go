// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

/*
Package ratings defines the in-memory representation of a loaded ratings
dataset.

A Table is an ordered slice of Record values. A record's slice position is
its index: after SortByTimestamp the table is ordered oldest to newest and
indexed contiguously from zero, the layout chronological train/test splits
expect.

# Overview

The package provides:
  - Record: one user-item rating observation with a typed timestamp
  - Table: ordered record collection with stable chronological sorting
  - Stats: single-pass summary (rows, distinct users/items, time range)

# Usage Example

	table, err := movielens.FetchML20MRatings(ctx, movielens.DefaultConfig())
	if err != nil {
	    log.Fatal(err)
	}

	s := table.Stats()
	fmt.Printf("%d ratings by %d users on %d items\n", s.Rows, s.Users, s.Items)

	first := table.Records[0]                // oldest rating
	last := table.Records[table.Len()-1]     // newest rating

# Thread Safety

Table is a plain value container with no internal synchronization. Loaders
hand over ownership; concurrent readers are safe once mutation stops.
*/
package ratings
