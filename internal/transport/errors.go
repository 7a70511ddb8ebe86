// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package transport

import "strconv"

// RequestError represents a failure on the network side of a download:
// building or issuing the request, a non-success status, or a broken
// body stream. The local filesystem is untouched or already cleaned up
// when one of these is returned.
type RequestError struct {
	// URL is the request target.
	URL string

	// Status is the HTTP status code, or zero when the request never
	// produced a response.
	Status int

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	msg := "request " + e.URL
	if e.Status != 0 {
		msg += ": status " + strconv.Itoa(e.Status)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// WriteError represents a local filesystem failure while persisting a
// download: creating the temporary file, writing to it, or moving it
// into place.
type WriteError struct {
	// Path is the file being written.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	msg := "write " + e.Path
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Cause
}
