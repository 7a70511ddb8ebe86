// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvDataDir overrides the base data directory when no explicit
	// directory is configured.
	EnvDataDir = "MOVIELENS_DATA"

	// DefaultDataDirName is the base directory name under the user's
	// home directory.
	DefaultDataDirName = "movielens_data"
)

// Dataset identifies one downloadable dataset and the names it uses
// inside the cache.
type Dataset struct {
	// Name is the human-readable identity used in logs and manifests.
	Name string

	// DirName is the directory the archive unpacks to. The upstream
	// zip prefixes every entry with this name.
	DirName string

	// FileName is the ratings file inside DirName.
	FileName string

	// DefaultURL is the canonical download location.
	DefaultURL string
}

// ArchiveName returns the archive file name stored beside DirName.
func (d Dataset) ArchiveName() string {
	return d.DirName + ".zip"
}

// ML20M is the MovieLens 20M ratings dataset.
var ML20M = Dataset{
	Name:       "ml-20m ratings",
	DirName:    "ml-20m",
	FileName:   "ratings.csv",
	DefaultURL: "https://files.grouplens.org/datasets/movielens/ml-20m.zip",
}

// Layout is the resolved on-disk cache layout for one dataset.
//
// The archive lives in BaseDir because its entries already carry the
// DirName prefix; extracting it in place produces Dir and SourcePath.
type Layout struct {
	// BaseDir is the data directory holding archives and dataset
	// directories. It is also the extraction target.
	BaseDir string

	// Dir is the dataset directory, BaseDir/DirName.
	Dir string

	// ArchivePath is the downloaded archive, BaseDir/DirName.zip.
	ArchivePath string

	// SourcePath is the ratings file, Dir/FileName.
	SourcePath string
}

// DefaultBaseDir returns the fixed default data directory under the
// user's home directory.
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultDataDirName), nil
}

// Locate resolves the cache layout for a dataset and ensures the base
// directory exists.
//
// The base directory is chosen by precedence: the explicit baseDir
// argument, then the MOVIELENS_DATA environment variable, then the
// default under the home directory. Only the base directory is created;
// the dataset directory appears when an archive is extracted.
func Locate(ds Dataset, baseDir string) (Layout, error) {
	if baseDir == "" {
		baseDir = os.Getenv(EnvDataDir)
	}
	if baseDir == "" {
		var err error
		baseDir, err = DefaultBaseDir()
		if err != nil {
			return Layout{}, err
		}
	}

	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return Layout{}, fmt.Errorf("create data directory %s: %w", baseDir, err)
	}

	dir := filepath.Join(baseDir, ds.DirName)
	return Layout{
		BaseDir:     baseDir,
		Dir:         dir,
		ArchivePath: filepath.Join(baseDir, ds.ArchiveName()),
		SourcePath:  filepath.Join(dir, ds.FileName),
	}, nil
}
