// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package ratings

import (
	"sort"
	"time"
)

// Record is a single user-item rating observation.
//
// UserID and ItemID are the raw MovieLens identifiers (never negative in
// the dataset, hence unsigned). Rating is the star value, 0.5 to 5.0 in
// half-star steps for ml-20m. Timestamp is the moment the rating was made,
// converted from the dataset's epoch seconds to UTC.
type Record struct {
	UserID    uint32
	ItemID    uint32
	Rating    float64
	Timestamp time.Time
}

// Table is an ordered collection of rating records.
//
// The slice position of a record is its index. Loaders return tables
// already passed through SortByTimestamp, so position 0 holds the oldest
// rating and position Len()-1 the newest.
type Table struct {
	Records []Record
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.Records)
}

// At returns the record at position i. It panics when i is out of
// range, like a slice index.
func (t *Table) At(i int) Record {
	return t.Records[i]
}

// SortByTimestamp orders records ascending by timestamp. The sort is
// stable: records sharing a timestamp keep their prior relative order.
func (t *Table) SortByTimestamp() {
	sort.SliceStable(t.Records, func(i, j int) bool {
		return t.Records[i].Timestamp.Before(t.Records[j].Timestamp)
	})
}

// Stats summarizes a table for logging and sanity checks.
type Stats struct {
	Rows      int
	Users     int // distinct user ids
	Items     int // distinct item ids
	FirstSeen time.Time
	LastSeen  time.Time
}

// Stats computes summary statistics in a single pass over the records.
// An empty table yields the zero Stats value.
func (t *Table) Stats() Stats {
	s := Stats{Rows: len(t.Records)}
	if s.Rows == 0 {
		return s
	}

	users := make(map[uint32]struct{})
	items := make(map[uint32]struct{})
	s.FirstSeen = t.Records[0].Timestamp
	s.LastSeen = t.Records[0].Timestamp

	for _, r := range t.Records {
		users[r.UserID] = struct{}{}
		items[r.ItemID] = struct{}{}
		if r.Timestamp.Before(s.FirstSeen) {
			s.FirstSeen = r.Timestamp
		}
		if r.Timestamp.After(s.LastSeen) {
			s.LastSeen = r.Timestamp
		}
	}

	s.Users = len(users)
	s.Items = len(items)
	return s
}
