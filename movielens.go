// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package movielens

import (
	"context"
	"fmt"

	"github.com/tomtom215/movielens/internal/acquire"
	"github.com/tomtom215/movielens/internal/archive"
	"github.com/tomtom215/movielens/internal/dataset"
	"github.com/tomtom215/movielens/internal/frame"
	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/transport"
	"github.com/tomtom215/movielens/ratings"
)

// FetchML20MRatings returns the ml-20m ratings table, downloading and
// extracting the dataset into the local cache first if it is not
// already there.
//
// The call is idempotent: once the cache holds the extracted ratings
// file, subsequent fetches load it without touching the network. When
// cfg.SourcePath is set the cache is bypassed and that file is loaded
// directly.
//
// Failures during resolution wrap the package's error sentinels
// (ErrStorage, ErrTransport, ErrArchive, ErrDataFormat,
// ErrConvergence); test with errors.Is.
func FetchML20MRatings(ctx context.Context, cfg Config) (*ratings.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Log != (logging.Config{}) {
		logging.Init(cfg.Log)
	}

	// Every log line of one fetch shares a run id.
	ctx = logging.ContextWithNewRunID(ctx)
	log := logging.Ctx(ctx)

	var layout dataset.Layout
	if cfg.SourcePath == "" {
		var err error
		layout, err = dataset.Locate(dataset.ML20M, cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		log.Info().
			Str("dataset", dataset.ML20M.Name).
			Str("data_dir", layout.BaseDir).
			Msg("Fetching ratings dataset")
	}

	var opts []transport.Option
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(cfg.HTTPTimeout))
	}
	if cfg.DownloadRateLimit > 0 {
		opts = append(opts, transport.WithRateLimit(cfg.DownloadRateLimit))
	}

	reader, err := frame.NewCSVReader()
	if err != nil {
		return nil, fmt.Errorf("create csv reader: %w", err)
	}
	defer reader.Close() //nolint:errcheck // in-memory handle, nothing to lose

	resolver := acquire.NewResolver(acquire.Options{
		Dataset:    dataset.ML20M,
		Layout:     layout,
		URL:        cfg.DownloadURL,
		SourcePath: cfg.SourcePath,
		Downloader: transport.NewClient(opts...),
		Extractor:  acquire.ExtractorFunc(archive.ExtractAll),
		Loader:     reader,
	})

	table, err := resolver.Resolve(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Ratings fetch failed")
		return nil, err
	}

	log.Info().Int("rows", table.Len()).Msg("Ratings fetch complete")
	return table, nil
}
