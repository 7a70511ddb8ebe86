// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package acquire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/movielens/internal/dataset"
	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/manifest"
	"github.com/tomtom215/movielens/internal/metrics"
	"github.com/tomtom215/movielens/internal/transport"
	"github.com/tomtom215/movielens/ratings"
)

// Resolution budget. One download plus one extraction is always enough
// to reach a loadable ratings file from any starting state; needing
// more means the archive's contents are wrong or something else is
// mutating the data directory, and retrying would loop forever.
const (
	maxDownloads   = 1
	maxExtractions = 1
)

// Downloader fetches a remote archive into a local file and reports
// the bytes written.
type Downloader interface {
	Download(ctx context.Context, url, dest string) (written int64, err error)
}

// Extractor unpacks an archive into a destination directory and
// reports the files written.
type Extractor interface {
	ExtractAll(ctx context.Context, src, destDir string) (files int, err error)
}

// ExtractorFunc adapts a plain extraction function to the Extractor
// interface.
type ExtractorFunc func(ctx context.Context, src, destDir string) (int, error)

// ExtractAll calls f.
func (f ExtractorFunc) ExtractAll(ctx context.Context, src, destDir string) (int, error) {
	return f(ctx, src, destDir)
}

// Loader decodes a ratings file into a table.
type Loader interface {
	ReadAll(ctx context.Context, csvPath string) (*ratings.Table, error)
}

// Options configures a Resolver.
type Options struct {
	// Dataset identifies what is being acquired.
	Dataset dataset.Dataset

	// Layout names the cache paths resolution operates on.
	Layout dataset.Layout

	// URL overrides the dataset's default download URL when set.
	URL string

	// SourcePath, when set, bypasses the cache entirely: the file at
	// this path is loaded directly and no download or extraction ever
	// happens.
	SourcePath string

	Downloader Downloader
	Extractor  Extractor
	Loader     Loader
}

// Resolver drives the dataset cache to a loadable state and loads the
// ratings table from it.
type Resolver struct {
	dataset    dataset.Dataset
	layout     dataset.Layout
	url        string
	sourcePath string
	downloader Downloader
	extractor  Extractor
	loader     Loader
}

// NewResolver builds a Resolver from options. An empty URL falls back
// to the dataset's default.
func NewResolver(opts Options) *Resolver {
	url := opts.URL
	if url == "" {
		url = opts.Dataset.DefaultURL
	}
	return &Resolver{
		dataset:    opts.Dataset,
		layout:     opts.Layout,
		url:        url,
		sourcePath: opts.SourcePath,
		downloader: opts.Downloader,
		extractor:  opts.Extractor,
		loader:     opts.Loader,
	}
}

// Resolve returns the loaded ratings table, downloading and extracting
// the dataset first if the cache requires it.
//
// Resolution re-derives the cache state from the filesystem before
// every step rather than assuming the previous step's effect, and caps
// the work at one download and one extraction. A cache that still is
// not loadable after spending that budget yields ErrConvergence.
func (r *Resolver) Resolve(ctx context.Context) (table *ratings.Table, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordResolution(time.Since(start), err)
	}()

	if r.sourcePath != "" {
		return r.loadOverride(ctx)
	}

	var (
		downloads    int
		extractions  int
		downloadedAt *time.Time
		archiveBytes int64
	)

	for {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolution interrupted: %w", err)
		}

		state := DeriveState(r.layout)
		metrics.RecordResolutionState(state.String())
		logging.Ctx(ctx).Debug().
			Str("state", state.String()).
			Int("downloads", downloads).
			Int("extractions", extractions).
			Msg("Cache state derived")

		switch state {
		case StateSourceReady:
			return r.load(ctx)

		case StateArchiveReady:
			if extractions >= maxExtractions {
				err = r.convergenceFailure(state, downloads, extractions)
				return nil, err
			}
			if err = r.extract(ctx, downloadedAt, archiveBytes); err != nil {
				return nil, err
			}
			extractions++

		case StateEmpty:
			if downloads >= maxDownloads {
				err = r.convergenceFailure(state, downloads, extractions)
				return nil, err
			}
			written, derr := r.download(ctx)
			if derr != nil {
				err = derr
				return nil, err
			}
			downloads++
			archiveBytes = written
			now := time.Now().UTC()
			downloadedAt = &now
		}
	}
}

// loadOverride loads the explicitly supplied ratings file. Any failure
// here is a data problem with the caller's file, including the file
// not existing.
func (r *Resolver) loadOverride(ctx context.Context) (*ratings.Table, error) {
	metrics.RecordResolutionState("override")
	logging.Ctx(ctx).Info().
		Str("path", r.sourcePath).
		Msg("Loading ratings from explicit source path")

	table, err := r.loader.ReadAll(ctx, r.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataFormat, err)
	}
	return table, nil
}

// load decodes the cached ratings file.
func (r *Resolver) load(ctx context.Context) (*ratings.Table, error) {
	r.logProvenance(ctx)

	table, err := r.loader.ReadAll(ctx, r.layout.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataFormat, err)
	}
	return table, nil
}

// download fetches the archive into the cache. Write failures on the
// local side are storage errors; everything else is transport.
func (r *Resolver) download(ctx context.Context) (int64, error) {
	written, err := r.downloader.Download(ctx, r.url, r.layout.ArchivePath)
	if err != nil {
		var writeErr *transport.WriteError
		if errors.As(err, &writeErr) {
			return 0, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return written, nil
}

// extract unpacks the cached archive and removes it afterwards. The
// archive is deleted only once extraction has succeeded; a failed
// extraction leaves it in place for inspection.
func (r *Resolver) extract(ctx context.Context, downloadedAt *time.Time, archiveBytes int64) error {
	if _, err := r.extractor.ExtractAll(ctx, r.layout.ArchivePath, r.layout.BaseDir); err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if err := os.Remove(r.layout.ArchivePath); err != nil {
		return fmt.Errorf("%w: remove extracted archive: %w", ErrStorage, err)
	}

	r.writeManifest(ctx, downloadedAt, archiveBytes)
	return nil
}

// writeManifest records a provenance receipt in the dataset directory.
// Best effort: the manifest never participates in cache decisions, so
// a failure here is logged and swallowed.
func (r *Resolver) writeManifest(ctx context.Context, downloadedAt *time.Time, archiveBytes int64) {
	m := manifest.Manifest{
		Dataset:      r.dataset.Name,
		SourceURL:    r.url,
		DownloadedAt: downloadedAt,
		ExtractedAt:  time.Now().UTC(),
		ArchiveBytes: archiveBytes,
	}
	if err := manifest.Write(r.layout.Dir, m); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("dir", r.layout.Dir).
			Msg("Failed to write dataset manifest")
	}
}

// logProvenance surfaces the manifest receipt, if one exists, when a
// cached dataset is about to be loaded.
func (r *Resolver) logProvenance(ctx context.Context) {
	m, err := manifest.Read(r.layout.Dir)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("No dataset manifest")
		return
	}

	evt := logging.Ctx(ctx).Info().
		Str("dataset", m.Dataset).
		Str("source_url", m.SourceURL).
		Time("extracted_at", m.ExtractedAt)
	if m.DownloadedAt != nil {
		evt = evt.Time("downloaded_at", *m.DownloadedAt)
	}
	evt.Msg("Using cached dataset")
}

// convergenceFailure reports a spent resolution budget.
func (r *Resolver) convergenceFailure(state State, downloads, extractions int) error {
	return fmt.Errorf("%w: state %s after %d download(s) and %d extraction(s)",
		ErrConvergence, state, downloads, extractions)
}
