package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestCompareVersions verifies semantic version ordering.
func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
	}{
		{"v1.0.0", "v1.0.0", 0},
		{"1.3.0", "v1.3.0", 0},
		{"v1.2.0", "v1.3.0", -1},
		{"v1.3.0", "v1.2.9", 1},
		{"v1.3.0-dev", "v1.3.0", 0},
		{"v1.3.0-beta", "v1.3.1", -1},
		{"v1.3", "v1.3.1", -1},
		{"v2.0.0", "v10.0.0", -1},
		{"v1.10.0", "v1.9.0", 1},
	}

	for _, tt := range tests {
		if got := CompareVersions(tt.v1, tt.v2); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}

// TestFetchLatest verifies release parsing against a stub server.
func TestFetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "Wolffia/") {
			t.Errorf("unexpected User-Agent: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name": "v9.9.9", "html_url": "https://example.com/releases/v9.9.9"}`))
	}))
	defer srv.Close()

	release, err := FetchLatest(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchLatest: %v", err)
	}
	if release.TagName != "v9.9.9" {
		t.Errorf("TagName = %q, want v9.9.9", release.TagName)
	}
	if release.HTMLURL != "https://example.com/releases/v9.9.9" {
		t.Errorf("HTMLURL = %q", release.HTMLURL)
	}
}

// TestFetchLatestBadStatus verifies non-200 responses are reported with
// the status code. Uses 404 since 5xx responses are retried first.
func TestFetchLatestBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchLatest(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("error = %q, want status 404 mention", err.Error())
	}
}

// TestFetchLatestBadJSON verifies malformed payloads are rejected.
func TestFetchLatestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	_, err := FetchLatest(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "JSON parse error") {
		t.Errorf("error = %q, want JSON parse error", err.Error())
	}
}
