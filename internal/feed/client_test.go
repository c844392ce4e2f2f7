package feed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFallback(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fallback.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fallback file: %v", err)
	}
	return path
}

const fallbackJSON = `[
	{"calEvent": {"eventName": "Fallback Concert", "freeEvent": "Yes"}},
	{"calEvent": {"eventName": "Fallback Market", "freeEvent": "Yes"}}
]`

func TestFetch_Live(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"calEvent": {"eventName": "Live Event"}}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 500, writeFallback(t, fallbackJSON), testLogger())

	records, fromFallback, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if fromFallback {
		t.Error("fromFallback = true, want false for a healthy feed")
	}
	if len(records) != 1 || records[0].EventName != "Live Event" {
		t.Errorf("unexpected records: %+v", records)
	}
	if gotLimit != "500" {
		t.Errorf("limit param = %q, want %q", gotLimit, "500")
	}
}

func TestFetch_OddFieldInOneRecordKeepsLiveFeed(t *testing.T) {
	// One type-mismatched field in one record must not flip the whole
	// batch to the fallback dataset.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"calEvent": {"eventName": "Good One"}},
			{"calEvent": {"eventName": "Odd Field", "description": 123}},
			{"calEvent": {"eventName": "Good Two"}}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, writeFallback(t, fallbackJSON), testLogger())

	records, fromFallback, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if fromFallback {
		t.Error("fromFallback = true, want the live batch to survive")
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want all 3 live records", len(records))
	}
	if records[1].EventName != "Odd Field" || records[1].Description != nil {
		t.Errorf("odd field should degrade to its default: %+v", records[1])
	}
}

func TestFetch_UndecodableRecordSkippedNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"calEvent": {"eventName": "Good One"}},
			{"calEvent": {"eventName": 123}},
			{"calEvent": {"eventName": "Good Two"}}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 100, writeFallback(t, fallbackJSON), testLogger())

	records, fromFallback, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if fromFallback {
		t.Error("fromFallback = true, want live")
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want the 2 decodable ones", len(records))
	}
	if records[0].EventName != "Good One" || records[1].EventName != "Good Two" {
		t.Errorf("unexpected surviving records: %+v", records)
	}
}

func TestFetch_FeedErrorUsesFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not": "an array"`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 100, writeFallback(t, fallbackJSON), testLogger())

			records, fromFallback, err := client.Fetch(context.Background())
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if !fromFallback {
				t.Error("fromFallback = false, want true")
			}
			if len(records) != 2 {
				t.Errorf("got %d fallback records, want 2", len(records))
			}
		})
	}
}

func TestFetch_UnreachableFeed(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, 100, writeFallback(t, fallbackJSON), testLogger())

	records, fromFallback, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !fromFallback || len(records) != 2 {
		t.Errorf("got fromFallback=%v with %d records, want fallback dataset", fromFallback, len(records))
	}
}

func TestFetch_FallbackUnavailableYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist.json")
			},
		},
		{
			name: "corrupt file",
			path: func(t *testing.T) string {
				return writeFallback(t, `not json at all`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 100, tt.path(t), testLogger())

			records, fromFallback, err := client.Fetch(context.Background())
			if err != nil {
				t.Fatalf("Fetch must not fail even without a fallback: %v", err)
			}
			if !fromFallback {
				t.Error("fromFallback = false, want true")
			}
			if len(records) != 0 {
				t.Errorf("got %d records, want empty floor", len(records))
			}
		})
	}
}
