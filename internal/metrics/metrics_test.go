// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRepositoryOp(t *testing.T) {
	before := testutil.ToFloat64(RepositoryOperations.WithLabelValues("get_movie", "hit"))
	RecordRepositoryOp("get_movie", "hit")
	RecordRepositoryOp("get_movie", "hit")
	after := testutil.ToFloat64(RepositoryOperations.WithLabelValues("get_movie", "hit"))

	if after-before != 2 {
		t.Errorf("expected 2 increments, got %v", after-before)
	}
}

func TestUpdateCatalogSize(t *testing.T) {
	UpdateCatalogSize(1000, 2, 1)

	if got := testutil.ToFloat64(CatalogMovies); got != 1000 {
		t.Errorf("CatalogMovies = %v, want 1000", got)
	}
	if got := testutil.ToFloat64(CatalogUsers); got != 2 {
		t.Errorf("CatalogUsers = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CatalogReviews); got != 1 {
		t.Errorf("CatalogReviews = %v, want 1", got)
	}
}

func TestRecordIngestRecords(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		result string
		n      int
		want   float64
	}{
		{"loaded movies", "movie", "loaded", 1000, 1000},
		{"skipped users", "user", "skipped", 3, 3},
		{"zero is ignored", "movie", "error", 0, 0},
		{"negative is ignored", "user", "error", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := IngestRecords.WithLabelValues(tt.kind, tt.result)
			before := testutil.ToFloat64(c)
			RecordIngestRecords(tt.kind, tt.result, tt.n)
			if got := testutil.ToFloat64(c) - before; got != tt.want {
				t.Errorf("delta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordIngestRun(t *testing.T) {
	IngestLastSuccess.Set(0)

	RecordIngestRun(200*time.Millisecond, errors.New("csv missing"))
	if got := testutil.ToFloat64(IngestLastSuccess); got != 0 {
		t.Errorf("failed run should not update last success, got %v", got)
	}

	RecordIngestRun(200*time.Millisecond, nil)
	if got := testutil.ToFloat64(IngestLastSuccess); got == 0 {
		t.Error("successful run should set last success timestamp")
	}

	var m dto.Metric
	if err := IngestDuration.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 2 {
		t.Errorf("expected at least 2 observations, got %d", m.GetHistogram().GetSampleCount())
	}
}

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("GET", "/api/v1/years", "200")
	before := testutil.ToFloat64(c)
	RecordAPIRequest("GET", "/api/v1/years", "200", 3*time.Millisecond)
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 1 {
		t.Errorf("active delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
}

func TestRecordPosterLookupAndCache(t *testing.T) {
	hit := PosterLookups.WithLabelValues("cache_hit")
	before := testutil.ToFloat64(hit)
	RecordPosterLookup("cache_hit", 0)
	if got := testutil.ToFloat64(hit) - before; got != 1 {
		t.Errorf("poster delta = %v, want 1", got)
	}

	h := CacheHits.WithLabelValues("genres")
	m := CacheMisses.WithLabelValues("genres")
	hb, mb := testutil.ToFloat64(h), testutil.ToFloat64(m)
	RecordCacheLookup("genres", true)
	RecordCacheLookup("genres", false)
	RecordCacheLookup("genres", false)
	if got := testutil.ToFloat64(h) - hb; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m) - mb; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}
