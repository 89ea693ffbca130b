// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parrot-check/internal/detector"
	"parrot-check/internal/resilience"
)

func fastRetry() resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(Options{
		BaseURL: baseURL,
		Timeout: time.Second,
		Retry:   fastRetry(),
	})
}

func TestLookupSummaryHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasSuffix(r.URL.Path, "capital_of_france") {
			t.Errorf("expected underscored title in %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"extract": "Paris is the capital of France.",
		})
	}))
	defer srv.Close()

	snippet, err := newTestClient(srv.URL).Lookup(context.Background(), "capital of france")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippet != "Paris is the capital of France." {
		t.Errorf("unexpected snippet %q", snippet)
	}
}

func TestLookupFallsBackToSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/"):
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/w/api.php":
			if r.URL.Query().Get("srsearch") != "albert einstein" {
				t.Errorf("unexpected search query %q", r.URL.Query().Get("srsearch"))
			}
			w.Write([]byte(`{"query":{"search":[{"snippet":"<span class=\"searchmatch\">Albert Einstein</span> was a physicist"}]}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	snippet, err := newTestClient(srv.URL).Lookup(context.Background(), "albert einstein")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippet != "Albert Einstein was a physicist" {
		t.Errorf("expected tag-stripped snippet, got %q", snippet)
	}
}

func TestLookupNothingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"query":{"search":[]}}`))
	}))
	defer srv.Close()

	snippet, err := newTestClient(srv.URL).Lookup(context.Background(), "zxqv nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippet != detector.LookupNotFound {
		t.Errorf("expected not-found sentinel, got %q", snippet)
	}
}

func TestLookupTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	snippet, err := newTestClient(srv.URL).Lookup(context.Background(), "anything")
	if err != nil {
		t.Fatalf("transport failures must not surface as errors, got %v", err)
	}
	if snippet != detector.LookupFailed {
		t.Errorf("expected failure sentinel, got %q", snippet)
	}
}

func TestLookupServerErrorBecomesFailedSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	snippet, err := newTestClient(srv.URL).Lookup(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippet != detector.LookupFailed {
		t.Errorf("expected failure sentinel, got %q", snippet)
	}
}
