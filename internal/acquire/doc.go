// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

// Package acquire drives the dataset cache to a loadable state.
//
// # Overview
//
// The cache for a dataset is fully described by two files: the
// downloaded archive and the extracted ratings file. Their existence
// defines three states:
//
//	state          ratings file   archive    next action
//	-------------  -------------  ---------  -----------------
//	source_ready   present        ignored    load
//	archive_ready  absent         present    extract, drop zip
//	empty          absent         absent     download
//
// Resolution is a loop over these states. Each pass re-derives the
// state from the filesystem with os.Stat, performs the one action that
// state calls for, and goes around again. Nothing is remembered
// between passes except how much work has been done, so a cache
// modified by hand, a leftover archive from a crashed run, or a
// freshly wiped directory all resolve the same way: from whatever is
// actually on disk.
//
// The loop is bounded. One download and one extraction is enough to go
// from an empty directory to a loadable ratings file; a resolution
// that wants more than that is chasing a cache that cannot converge
// (an archive without a ratings file in it, say) and fails with
// ErrConvergence instead of looping.
//
// # Transitions
//
// A download lands the archive next to the dataset directory. The
// transport layer writes through a temp file, so a failed download
// leaves the state at empty rather than archive_ready with a truncated
// zip.
//
// An extraction unpacks the archive and then deletes it. Deletion
// happens only after extraction succeeds; a corrupt archive stays on
// disk so it can be inspected, and resolution fails with ErrArchive
// rather than silently re-downloading over it.
//
// # Override Mode
//
// When Options.SourcePath is set the cache is bypassed entirely: the
// named file is loaded directly, nothing is downloaded or extracted,
// and every failure, including the file not existing, is ErrDataFormat.
// An explicitly supplied path is the caller asserting "load this";
// there is no fallback to try.
//
// # Usage Example
//
//	resolver := acquire.NewResolver(acquire.Options{
//		Dataset:    dataset.ML20M,
//		Layout:     layout,
//		Downloader: transport.NewClient(),
//		Extractor:  acquire.ExtractorFunc(archive.ExtractAll),
//		Loader:     reader,
//	})
//	table, err := resolver.Resolve(ctx)
//	if errors.Is(err, acquire.ErrTransport) {
//		// network trouble; the cache is unchanged, retry later
//	}
//
// # See Also
//
//   - internal/dataset: computes the Layout resolution operates on
//   - internal/transport: the production Downloader
//   - internal/archive: the production Extractor
//   - internal/frame: the production Loader
package acquire
