// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

/*
Package metrics provides Prometheus instrumentation for dataset acquisition.

Metrics register on the default Prometheus registry via promauto; embedding
applications expose them through their own /metrics handler. The library
itself serves nothing.

# Available Metrics

Download Metrics:
  - movielens_downloads_total: Archive download attempts (counter)
    Labels: result (success, failure)
  - movielens_download_bytes: Downloaded archive sizes (histogram)
  - movielens_download_duration_seconds: Download latency (histogram)
    Buckets: 1, 5, 10, 30, 60, 120, 300, 600

Extraction Metrics:
  - movielens_extractions_total: Extraction attempts (counter)
    Labels: result
  - movielens_extraction_duration_seconds: Extraction latency (histogram)

Load Metrics:
  - movielens_load_duration_seconds: Ratings table load latency (histogram)
  - movielens_loaded_rows: Rows per table load (histogram)

Resolution Metrics:
  - movielens_resolutions_total: Cache resolutions (counter)
    Labels: result
  - movielens_resolution_duration_seconds: End-to-end latency (histogram)
  - movielens_resolution_states_total: Starting states observed (counter)
    Labels: state (source_ready, archive_ready, empty, override)

# Usage Example

	import (
	    "github.com/tomtom215/movielens/internal/metrics"
	)

	start := time.Now()
	n, err := client.Download(ctx, url, dest)
	metrics.RecordDownload(n, time.Since(start), err)

# Thread Safety

All recording functions are safe for concurrent use. The Prometheus client
library handles synchronization internally.

# See Also

  - internal/acquire: records resolution and state metrics
  - internal/transport: download instrumentation call sites
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
