// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package frame decodes the ratings CSV into an in-memory table using
// DuckDB.
//
// # Overview
//
// The ml-20m ratings file is a four-column CSV (user, item, rating,
// epoch timestamp) with twenty million data rows. Rather than
// hand-rolling type coercion over encoding/csv, the reader delegates
// to DuckDB's read_csv with an explicit column spec: the declared
// types are enforced during the scan, a malformed value fails the read
// instead of decoding into a garbage record, and the file's header row
// is discarded so decoding is purely positional.
//
// The resulting table is sorted ascending by timestamp before it is
// returned. Rows sharing a timestamp keep their file order.
//
// # Usage Example
//
//	reader, err := frame.NewCSVReader()
//	if err != nil {
//		return err
//	}
//	defer reader.Close()
//
//	table, err := reader.ReadAll(ctx, "/data/ml-20m/ratings.csv")
//	if err != nil {
//		return fmt.Errorf("load ratings: %w", err)
//	}
//	log.Info().Int("rows", table.Len()).Msg("Ratings loaded")
//
// # Thread Safety
//
// A CSVReader owns one DuckDB handle. database/sql serializes access,
// but readers are cheap; create one per load rather than sharing.
//
// # See Also
//
//   - ratings: the table type this package produces
//   - internal/acquire: decides which file the reader is pointed at
package frame
