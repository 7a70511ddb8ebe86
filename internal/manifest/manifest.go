// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

// FileName is the manifest file stored inside the dataset directory.
// The leading dot keeps it out of the way of dataset files.
const FileName = ".manifest.json"

// Manifest records how a cached dataset directory came to be. It is a
// provenance receipt, not part of the cache state machine: acquisition
// decisions are made from file existence alone, never from the manifest.
type Manifest struct {
	// Dataset is the human-readable dataset identity.
	Dataset string `json:"dataset"`

	// SourceURL is the URL the archive was downloaded from.
	SourceURL string `json:"source_url"`

	// DownloadedAt is when the download finished. Unset when the
	// archive was already present.
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`

	// ExtractedAt is when the archive was extracted.
	ExtractedAt time.Time `json:"extracted_at"`

	// ArchiveBytes is the size of the downloaded archive. Zero when
	// the size is unknown.
	ArchiveBytes int64 `json:"archive_bytes,omitempty"`
}

// Path returns the manifest location for a dataset directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Write stores the manifest in the dataset directory.
func Write(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads the manifest from the dataset directory. Callers can test
// the returned error with errors.Is(err, os.ErrNotExist) for directories
// that predate manifest writing.
func Read(dir string) (Manifest, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return m, nil
}
