// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package acquire

import (
	"os"

	"github.com/tomtom215/movielens/internal/dataset"
)

// State describes how far along the dataset cache is. It is derived
// from the filesystem on every inspection and never stored, so
// external changes to the data directory are picked up on the next
// resolution.
type State int

const (
	// StateEmpty means neither the ratings file nor the archive
	// exists; a download is required.
	StateEmpty State = iota

	// StateArchiveReady means the archive is on disk but has not been
	// extracted yet.
	StateArchiveReady

	// StateSourceReady means the ratings file is on disk and can be
	// loaded directly.
	StateSourceReady
)

// String returns the metrics label for the state.
func (s State) String() string {
	switch s {
	case StateSourceReady:
		return "source_ready"
	case StateArchiveReady:
		return "archive_ready"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// DeriveState inspects the filesystem and reports the cache state for
// the given layout. The ratings file wins over the archive when both
// exist, since an extracted dataset makes its archive redundant.
func DeriveState(layout dataset.Layout) State {
	if fileExists(layout.SourcePath) {
		return StateSourceReady
	}
	if fileExists(layout.ArchivePath) {
		return StateArchiveReady
	}
	return StateEmpty
}

// fileExists reports whether path names an existing regular file.
// Directories do not count; a directory squatting on the ratings path
// is not a loadable dataset.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
