// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/metrics"
)

// copyBufferSize is the chunk size for streaming entries to disk.
const copyBufferSize = 256 * 1024

// ExtractAll unpacks the zip archive at src into destDir, preserving
// entry paths, and returns the number of files written.
//
// Each entry is written to a temporary file and renamed into place only
// when complete, so an interrupted extraction never leaves a partial
// file under an entry's final name. The archive itself is left in place
// regardless of outcome; deleting it after success is the caller's
// transition to make.
func ExtractAll(ctx context.Context, src, destDir string) (files int, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordExtraction(time.Since(start), err)
	}()

	logging.Ctx(ctx).Info().
		Str("archive", src).
		Str("dest", destDir).
		Msg("Extracting archive")

	r, err := zip.OpenReader(src)
	if err != nil {
		return 0, fmt.Errorf("open archive %s: %w", src, err)
	}
	defer r.Close() //nolint:errcheck // read-only archive handle

	cleanDest := filepath.Clean(destDir)
	for _, f := range r.File {
		if ctx.Err() != nil {
			return files, fmt.Errorf("extraction interrupted: %w", ctx.Err())
		}

		target, terr := entryTarget(cleanDest, f.Name)
		if terr != nil {
			return files, terr
		}

		if f.FileInfo().IsDir() {
			if merr := os.MkdirAll(target, 0o750); merr != nil {
				return files, fmt.Errorf("create directory %s: %w", target, merr)
			}
			continue
		}

		if ferr := extractFile(ctx, f, target); ferr != nil {
			return files, ferr
		}
		files++
	}

	logging.Ctx(ctx).Info().
		Str("archive", src).
		Int("files", files).
		Dur("elapsed", time.Since(start)).
		Msg("Extraction complete")

	return files, nil
}

// entryTarget resolves an entry name under destDir and rejects names
// that would escape it.
func entryTarget(cleanDest, name string) (string, error) {
	target := filepath.Join(cleanDest, name)
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return target, nil
}

// extractFile writes one regular entry to its target path via a
// temporary file in the same directory.
func extractFile(ctx context.Context, f *zip.File, target string) (err error) {
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(target), err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close() //nolint:errcheck // read-only entry handle

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".partial-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", f.Name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()        //nolint:errcheck // cleanup on error path
			os.Remove(tmpName) //nolint:errcheck // cleanup on error path
		}
	}()

	buf := make([]byte, copyBufferSize)
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("extraction interrupted: %w", ctx.Err())
		default:
		}

		n, rerr := rc.Read(buf)
		if n > 0 {
			if _, werr := tmp.Write(buf[:n]); werr != nil {
				return fmt.Errorf("write entry %s: %w", f.Name, werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read entry %s: %w", f.Name, rerr)
		}
	}

	if cerr := tmp.Close(); cerr != nil {
		err = fmt.Errorf("close entry %s: %w", f.Name, cerr)
		return err
	}
	if err = os.Chmod(tmpName, 0o640); err != nil {
		return fmt.Errorf("chmod entry %s: %w", f.Name, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("finalize entry %s: %w", f.Name, err)
	}
	return nil
}
