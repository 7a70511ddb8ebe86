// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package movielens fetches the MovieLens ml-20m ratings dataset into
// a local cache and loads it as a typed, timestamp-ordered table.
//
// # Overview
//
// The GroupLens ml-20m archive is large and its download endpoint
// rate-limits enthusiasm, so the package treats the local filesystem
// as a cache and drives it through a small state machine. Whatever
// shape the cache is in, one fetch converges it to a loaded table:
//
//	cache shape                        fetch does
//	--------------------------------   ----------------------------
//	ratings file extracted             load it
//	archive downloaded, not unpacked   extract, drop zip, load
//	nothing                            download, extract, drop zip, load
//
// State is derived from file existence alone, never recorded, so
// crashed runs, hand-deleted files, and pre-seeded archives all
// resolve correctly on the next call.
//
// # Quick Start
//
//	table, err := movielens.FetchML20MRatings(ctx, movielens.DefaultConfig())
//	if err != nil {
//		log.Fatal().Err(err).Msg("fetch ratings")
//	}
//	for _, r := range table.Records {
//		train(r.UserID, r.ItemID, r.Rating, r.Timestamp)
//	}
//
// Records are sorted ascending by rating timestamp, ready for
// sequential recommender training, with ties keeping their original
// file order.
//
// # Cache Layout
//
// With the default configuration the cache lives under
// ~/movielens_data:
//
//	movielens_data/
//	├── ml-20m.zip          transient; deleted after extraction
//	└── ml-20m/
//	    ├── ratings.csv     the dataset
//	    └── .manifest.json  provenance receipt (informational only)
//
// The base directory is resolved from Config.CacheDir, then the
// MOVIELENS_DATA environment variable, then the home directory
// default.
//
// # Configuration
//
// FetchML20MRatings takes an explicit Config. LoadConfig builds one
// from defaults, an optional YAML file (MOVIELENS_CONFIG), and
// MOVIELENS_* environment variables:
//
//	MOVIELENS_DATA          base data directory
//	MOVIELENS_SOURCE        load this ratings file directly, skip the cache
//	MOVIELENS_URL           alternate archive URL (mirror)
//	MOVIELENS_HTTP_TIMEOUT  download timeout, e.g. "10m"
//	MOVIELENS_RATE_LIMIT    download throttle in bytes per second
//	MOVIELENS_LOG_LEVEL     zerolog level, e.g. "debug"
//	MOVIELENS_LOG_FORMAT    "json" or "console"
//
// # Errors
//
// Resolution failures wrap one of five sentinels: ErrStorage,
// ErrTransport, ErrArchive, ErrDataFormat, ErrConvergence. A transport
// failure leaves the cache unchanged and is safe to retry; an archive
// failure keeps the corrupt zip on disk for inspection.
//
//	if errors.Is(err, movielens.ErrTransport) {
//		// network trouble; back off and retry the fetch
//	}
//
// # See Also
//
//   - ratings: the Table and Record types returned by a fetch
package movielens
