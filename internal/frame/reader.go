// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package frame

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// DuckDB driver - used for typed CSV decoding of the ratings table
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/metrics"
	"github.com/tomtom215/movielens/ratings"
)

// ratingsQuery decodes the four positional ratings columns with
// explicit types. Declaring columns disables type sniffing, and
// header=true discards the file's own header row, so the file is read
// by position regardless of what the header calls its columns.
const ratingsQuery = `
	SELECT user_id, item_id, rating, ts
	FROM read_csv(?, header = true, columns = {
		'user_id': 'UINTEGER',
		'item_id': 'UINTEGER',
		'rating':  'DOUBLE',
		'ts':      'BIGINT'
	})
`

// CSVReader decodes ratings CSV files through an in-memory DuckDB
// instance. DuckDB's read_csv applies the declared column types during
// the scan, so malformed values fail the read instead of producing
// silently coerced records.
type CSVReader struct {
	db *sql.DB
}

// NewCSVReader creates a reader backed by a fresh in-memory DuckDB
// connection.
func NewCSVReader() (*CSVReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	// sql.Open is lazy; force a connection so a broken driver setup
	// surfaces here rather than mid-read.
	if err := verifyConnection(db); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, fmt.Errorf("verify duckdb connection: %w", err)
	}

	return &CSVReader{db: db}, nil
}

// verifyConnection runs a trivial statement to confirm DuckDB is usable.
func verifyConnection(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var one int
	return db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

// Close closes the underlying DuckDB connection.
func (r *CSVReader) Close() error {
	return r.db.Close()
}

// ReadAll decodes every data row of the ratings file at csvPath and
// returns them as a table sorted ascending by timestamp. A file holding
// only a header decodes to an empty table.
func (r *CSVReader) ReadAll(ctx context.Context, csvPath string) (*ratings.Table, error) {
	start := time.Now()

	rows, err := r.db.QueryContext(ctx, ratingsQuery, csvPath)
	if err != nil {
		return nil, fmt.Errorf("read ratings csv %s: %w", csvPath, err)
	}
	defer rows.Close() //nolint:errcheck // read-only result set

	var records []ratings.Record
	for rows.Next() {
		var rec ratings.Record
		var ts int64

		if err := rows.Scan(&rec.UserID, &rec.ItemID, &rec.Rating, &ts); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0).UTC()

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	table := &ratings.Table{Records: records}
	table.SortByTimestamp()

	metrics.RecordLoad(table.Len(), time.Since(start))
	logging.Ctx(ctx).Info().
		Str("path", csvPath).
		Int("rows", table.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Ratings table loaded")

	return table, nil
}
