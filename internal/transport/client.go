// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package transport

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/metrics"
)

// copyBufferSize is the chunk size for streaming archive bodies to disk.
const copyBufferSize = 256 * 1024

// Client downloads archives over HTTP. Downloads land in a temporary
// file beside the destination and are renamed into place only when the
// body has been read completely, so a failed download never leaves a
// partial archive behind.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout caps the total time for one download, including the full
// body read. Zero means no cap; context cancellation still applies.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit throttles downloads to roughly bytesPerSec. Zero or
// negative disables throttling.
func WithRateLimit(bytesPerSec int64) Option {
	return func(c *Client) {
		if bytesPerSec > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
		}
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a download client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Download fetches url into dest and returns the number of bytes
// written. On any failure the temporary file is removed and dest is
// left untouched.
func (c *Client) Download(ctx context.Context, url, dest string) (written int64, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDownload(written, time.Since(start), err)
	}()

	logging.Ctx(ctx).Info().
		Str("url", url).
		Str("dest", dest).
		Msg("Starting download")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &RequestError{URL: url, Cause: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &RequestError{URL: url, Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close of response body

	if resp.StatusCode != http.StatusOK {
		return 0, &RequestError{URL: url, Status: resp.StatusCode}
	}

	destDir := filepath.Dir(dest)
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return 0, &WriteError{Path: destDir, Cause: err}
	}

	tmp, err := os.CreateTemp(destDir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return 0, &WriteError{Path: dest, Cause: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()          //nolint:errcheck // cleanup on error path
			os.Remove(tmpName)   //nolint:errcheck // cleanup on error path
		}
	}()

	body := io.Reader(resp.Body)
	if c.limiter != nil {
		body = &throttledReader{ctx: ctx, r: resp.Body, limiter: c.limiter}
	}

	written, err = copyBody(ctx, url, tmp, body)
	if err != nil {
		return written, err
	}

	if err = tmp.Sync(); err != nil {
		return written, &WriteError{Path: tmpName, Cause: err}
	}
	if err = tmp.Close(); err != nil {
		return written, &WriteError{Path: tmpName, Cause: err}
	}
	if err = os.Rename(tmpName, dest); err != nil {
		return written, &WriteError{Path: dest, Cause: err}
	}

	logging.Ctx(ctx).Info().
		Str("url", url).
		Int64("bytes", written).
		Dur("elapsed", time.Since(start)).
		Msg("Download complete")

	return written, nil
}

// copyBody streams src into dst, checking for cancellation between
// chunks and classifying read failures as request errors and write
// failures as write errors.
func copyBody(ctx context.Context, url string, dst *os.File, src io.Reader) (int64, error) {
	buf := make([]byte, copyBufferSize)
	var written int64

	for {
		select {
		case <-ctx.Done():
			return written, &RequestError{URL: url, Cause: ctx.Err()}
		default:
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, &WriteError{Path: dst.Name(), Cause: werr}
			}
			if wn != n {
				return written, &WriteError{Path: dst.Name(), Cause: io.ErrShortWrite}
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, &RequestError{URL: url, Cause: rerr}
		}
	}
}

// throttledReader paces reads through a rate limiter so downloads stay
// under the configured bytes-per-second budget.
type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	// WaitN rejects requests larger than the burst, so cap reads at it.
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
