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
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/movielens/internal/dataset"
	"github.com/tomtom215/movielens/internal/manifest"
	"github.com/tomtom215/movielens/internal/transport"
	"github.com/tomtom215/movielens/ratings"
)

const ratingsCSV = "userId,movieId,rating,timestamp\n1,2,3.5,1094785740\n"

// fakeDownloader writes a canned payload to the destination path,
// counting calls.
type fakeDownloader struct {
	calls    int
	lastURL  string
	lastDest string
	payload  []byte
	err      error
	noWrite  bool // succeed without creating the destination file
}

func (d *fakeDownloader) Download(_ context.Context, url, dest string) (int64, error) {
	d.calls++
	d.lastURL = url
	d.lastDest = dest
	if d.err != nil {
		return 0, d.err
	}
	if d.noWrite {
		return 0, nil
	}
	if err := os.WriteFile(dest, d.payload, 0o640); err != nil {
		return 0, err
	}
	return int64(len(d.payload)), nil
}

// fakeExtractor materializes a fixed set of files under the
// destination directory, counting calls.
type fakeExtractor struct {
	calls int
	files map[string]string // slash-separated relative path -> content
	err   error
}

func (e *fakeExtractor) ExtractAll(_ context.Context, _, destDir string) (int, error) {
	e.calls++
	if e.err != nil {
		return 0, e.err
	}
	n := 0
	for rel, content := range e.files {
		path := filepath.Join(destDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return n, err
		}
		if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// fakeLoader fails if the file does not exist, otherwise returns a
// one-row table.
type fakeLoader struct {
	calls    int
	lastPath string
	err      error
}

func (l *fakeLoader) ReadAll(_ context.Context, csvPath string) (*ratings.Table, error) {
	l.calls++
	l.lastPath = csvPath
	if l.err != nil {
		return nil, l.err
	}
	if _, err := os.ReadFile(csvPath); err != nil {
		return nil, fmt.Errorf("read ratings csv %s: %w", csvPath, err)
	}
	return &ratings.Table{Records: []ratings.Record{
		{UserID: 1, ItemID: 2, Rating: 3.5, Timestamp: time.Unix(1094785740, 0).UTC()},
	}}, nil
}

type testEnv struct {
	layout dataset.Layout
	dl     *fakeDownloader
	ex     *fakeExtractor
	ld     *fakeLoader
	r      *Resolver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	layout := testLayout(t)
	dl := &fakeDownloader{payload: []byte("zip bytes")}
	ex := &fakeExtractor{files: map[string]string{"ml-20m/ratings.csv": ratingsCSV}}
	ld := &fakeLoader{}
	r := NewResolver(Options{
		Dataset:    dataset.ML20M,
		Layout:     layout,
		URL:        "https://mirror.test/ml-20m.zip",
		Downloader: dl,
		Extractor:  ex,
		Loader:     ld,
	})
	return &testEnv{layout: layout, dl: dl, ex: ex, ld: ld, r: r}
}

// assertConverged checks the terminal cache shape: ratings file on
// disk, archive consumed.
func assertConverged(t *testing.T, layout dataset.Layout) {
	t.Helper()

	if _, err := os.Stat(layout.SourcePath); err != nil {
		t.Errorf("source file should exist after resolution: %v", err)
	}
	if _, err := os.Stat(layout.ArchivePath); !os.IsNotExist(err) {
		t.Errorf("archive should be gone after resolution, stat err = %v", err)
	}
}

func TestResolveFromEmpty(t *testing.T) {
	env := newTestEnv(t)

	table, err := env.r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}

	if env.dl.calls != 1 || env.ex.calls != 1 || env.ld.calls != 1 {
		t.Errorf("calls = %d/%d/%d (download/extract/load), want 1/1/1",
			env.dl.calls, env.ex.calls, env.ld.calls)
	}
	if env.dl.lastURL != "https://mirror.test/ml-20m.zip" {
		t.Errorf("download url = %q", env.dl.lastURL)
	}
	if env.dl.lastDest != env.layout.ArchivePath {
		t.Errorf("download dest = %q, want %q", env.dl.lastDest, env.layout.ArchivePath)
	}
	if env.ld.lastPath != env.layout.SourcePath {
		t.Errorf("load path = %q, want %q", env.ld.lastPath, env.layout.SourcePath)
	}
	assertConverged(t, env.layout)

	m, err := manifest.Read(env.layout.Dir)
	if err != nil {
		t.Fatalf("manifest should exist after extraction: %v", err)
	}
	if m.Dataset != dataset.ML20M.Name {
		t.Errorf("manifest dataset = %q, want %q", m.Dataset, dataset.ML20M.Name)
	}
	if m.SourceURL != "https://mirror.test/ml-20m.zip" {
		t.Errorf("manifest source_url = %q", m.SourceURL)
	}
	if m.DownloadedAt == nil {
		t.Error("manifest downloaded_at should be set after a download")
	}
	if m.ArchiveBytes != int64(len("zip bytes")) {
		t.Errorf("manifest archive_bytes = %d, want %d", m.ArchiveBytes, len("zip bytes"))
	}
}

func TestResolveFromArchiveReady(t *testing.T) {
	env := newTestEnv(t)
	seedArchive(t, env.layout)

	table, err := env.r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}

	if env.dl.calls != 0 {
		t.Errorf("download calls = %d, want 0 when archive is already cached", env.dl.calls)
	}
	if env.ex.calls != 1 || env.ld.calls != 1 {
		t.Errorf("calls = %d/%d (extract/load), want 1/1", env.ex.calls, env.ld.calls)
	}
	assertConverged(t, env.layout)

	m, err := manifest.Read(env.layout.Dir)
	if err != nil {
		t.Fatalf("manifest should exist after extraction: %v", err)
	}
	if m.DownloadedAt != nil {
		t.Error("manifest downloaded_at should be unset for a pre-existing archive")
	}
}

func TestResolveFromSourceReady(t *testing.T) {
	env := newTestEnv(t)
	seedSource(t, env.layout, ratingsCSV)

	table, err := env.r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}

	if env.dl.calls != 0 || env.ex.calls != 0 {
		t.Errorf("calls = %d/%d (download/extract), want 0/0 on cache hit",
			env.dl.calls, env.ex.calls)
	}
	if env.ld.calls != 1 {
		t.Errorf("load calls = %d, want 1", env.ld.calls)
	}
}

func TestResolveStateIndependence(t *testing.T) {
	tests := []struct {
		name string
		seed func(t *testing.T, env *testEnv)
	}{
		{"from empty", func(*testing.T, *testEnv) {}},
		{"from archive", func(t *testing.T, env *testEnv) { seedArchive(t, env.layout) }},
		{"from source", func(t *testing.T, env *testEnv) { seedSource(t, env.layout, ratingsCSV) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.seed(t, env)

			table, err := env.r.Resolve(context.Background())
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if table.Len() != 1 {
				t.Errorf("Len() = %d, want 1 regardless of starting state", table.Len())
			}
			if _, err := os.Stat(env.layout.SourcePath); err != nil {
				t.Errorf("source file should exist after resolution: %v", err)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.r.Resolve(context.Background()); err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}
	if _, err := env.r.Resolve(context.Background()); err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}

	if env.dl.calls != 1 || env.ex.calls != 1 {
		t.Errorf("calls = %d/%d (download/extract), want 1/1 across two resolutions",
			env.dl.calls, env.ex.calls)
	}
	if env.ld.calls != 2 {
		t.Errorf("load calls = %d, want 2", env.ld.calls)
	}
}

func TestResolveSourceWinsOverArchive(t *testing.T) {
	env := newTestEnv(t)
	seedArchive(t, env.layout)
	seedSource(t, env.layout, ratingsCSV)

	if _, err := env.r.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if env.ex.calls != 0 {
		t.Errorf("extract calls = %d, want 0 when the source already exists", env.ex.calls)
	}
	if _, err := os.Stat(env.layout.ArchivePath); err != nil {
		t.Errorf("untouched archive should remain in place: %v", err)
	}
}

func TestResolveConvergenceBudget(t *testing.T) {
	t.Run("extraction produces no ratings file", func(t *testing.T) {
		env := newTestEnv(t)
		env.ex.files = nil

		_, err := env.r.Resolve(context.Background())
		if !errors.Is(err, ErrConvergence) {
			t.Fatalf("Resolve() error = %v, want ErrConvergence", err)
		}
		if env.dl.calls != 1 || env.ex.calls != 1 {
			t.Errorf("calls = %d/%d (download/extract), want 1/1 before giving up",
				env.dl.calls, env.ex.calls)
		}
	})

	t.Run("download produces no archive", func(t *testing.T) {
		env := newTestEnv(t)
		env.dl.noWrite = true

		_, err := env.r.Resolve(context.Background())
		if !errors.Is(err, ErrConvergence) {
			t.Fatalf("Resolve() error = %v, want ErrConvergence", err)
		}
		if env.dl.calls != 1 {
			t.Errorf("download calls = %d, want 1", env.dl.calls)
		}
		if env.ex.calls != 0 {
			t.Errorf("extract calls = %d, want 0", env.ex.calls)
		}
	})
}

func TestResolveTransportError(t *testing.T) {
	env := newTestEnv(t)
	env.dl.err = &transport.RequestError{URL: "https://mirror.test/ml-20m.zip", Status: 503}

	_, err := env.r.Resolve(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("Resolve() error = %v, want ErrTransport", err)
	}

	var reqErr *transport.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("underlying RequestError should stay reachable")
	}
	if reqErr.Status != 503 {
		t.Errorf("status = %d, want 503", reqErr.Status)
	}

	if env.ex.calls != 0 || env.ld.calls != 0 {
		t.Errorf("calls = %d/%d (extract/load), want 0/0 after a failed download",
			env.ex.calls, env.ld.calls)
	}
	if _, serr := os.Stat(env.layout.ArchivePath); !os.IsNotExist(serr) {
		t.Error("failed download must not leave an archive behind")
	}
}

func TestResolveStorageError(t *testing.T) {
	env := newTestEnv(t)
	env.dl.err = &transport.WriteError{Path: env.layout.ArchivePath, Cause: os.ErrPermission}

	_, err := env.r.Resolve(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("Resolve() error = %v, want ErrStorage", err)
	}
	if errors.Is(err, ErrTransport) {
		t.Error("local write failures must not classify as transport errors")
	}
}

func TestResolveArchiveError(t *testing.T) {
	env := newTestEnv(t)
	seedArchive(t, env.layout)
	env.ex.err = errors.New("zip: not a valid zip file")

	_, err := env.r.Resolve(context.Background())
	if !errors.Is(err, ErrArchive) {
		t.Fatalf("Resolve() error = %v, want ErrArchive", err)
	}

	if _, serr := os.Stat(env.layout.ArchivePath); serr != nil {
		t.Errorf("failed extraction should leave the archive for inspection: %v", serr)
	}
	if env.dl.calls != 0 || env.ld.calls != 0 {
		t.Errorf("calls = %d/%d (download/load), want 0/0", env.dl.calls, env.ld.calls)
	}
}

func TestResolveDataFormatError(t *testing.T) {
	env := newTestEnv(t)
	seedSource(t, env.layout, "userId,movieId,rating,timestamp\n1,2,garbage,0\n")
	env.ld.err = errors.New("scan rating row: invalid value")

	_, err := env.r.Resolve(context.Background())
	if !errors.Is(err, ErrDataFormat) {
		t.Fatalf("Resolve() error = %v, want ErrDataFormat", err)
	}
}

func TestResolveOverride(t *testing.T) {
	t.Run("loads explicit path without touching the cache", func(t *testing.T) {
		env := newTestEnv(t)
		seedArchive(t, env.layout) // would normally trigger extraction

		override := filepath.Join(t.TempDir(), "my-ratings.csv")
		if err := os.WriteFile(override, []byte(ratingsCSV), 0o640); err != nil {
			t.Fatalf("write override file: %v", err)
		}
		r := NewResolver(Options{
			Dataset:    dataset.ML20M,
			Layout:     env.layout,
			SourcePath: override,
			Downloader: env.dl,
			Extractor:  env.ex,
			Loader:     env.ld,
		})

		table, err := r.Resolve(context.Background())
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
		if env.ld.lastPath != override {
			t.Errorf("load path = %q, want override %q", env.ld.lastPath, override)
		}
		if env.dl.calls != 0 || env.ex.calls != 0 {
			t.Errorf("calls = %d/%d (download/extract), want 0/0 in override mode",
				env.dl.calls, env.ex.calls)
		}
		if _, serr := os.Stat(env.layout.ArchivePath); serr != nil {
			t.Errorf("cached archive must stay untouched in override mode: %v", serr)
		}
	})

	t.Run("missing override file is a data error", func(t *testing.T) {
		env := newTestEnv(t)
		r := NewResolver(Options{
			Dataset:    dataset.ML20M,
			Layout:     env.layout,
			SourcePath: filepath.Join(t.TempDir(), "absent.csv"),
			Downloader: env.dl,
			Extractor:  env.ex,
			Loader:     env.ld,
		})

		_, err := r.Resolve(context.Background())
		if !errors.Is(err, ErrDataFormat) {
			t.Fatalf("Resolve() error = %v, want ErrDataFormat", err)
		}
		if env.dl.calls != 0 {
			t.Errorf("download calls = %d, want 0", env.dl.calls)
		}
	})
}

func TestResolveCancelled(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.r.Resolve(ctx)
	if err == nil {
		t.Fatal("Resolve() should fail with a cancelled context")
	}
	if env.dl.calls != 0 {
		t.Errorf("download calls = %d, want 0", env.dl.calls)
	}
}

func TestDefaultURLFallback(t *testing.T) {
	env := newTestEnv(t)
	r := NewResolver(Options{
		Dataset:    dataset.ML20M,
		Layout:     env.layout,
		Downloader: env.dl,
		Extractor:  env.ex,
		Loader:     env.ld,
	})

	if _, err := r.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if env.dl.lastURL != dataset.ML20M.DefaultURL {
		t.Errorf("download url = %q, want dataset default %q", env.dl.lastURL, dataset.ML20M.DefaultURL)
	}
}
