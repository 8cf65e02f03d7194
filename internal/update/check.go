// Package update queries GitHub releases for newer Wolffia versions.
// It is shared by the GUI update check and the check-update CLI command.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/wolffia-app/wolffia/internal/constants"
	"github.com/wolffia-app/wolffia/internal/version"
)

// Release represents the GitHub API response structure
type Release struct {
	TagName string `json:"tag_name"` // e.g., "v1.3.0"
	HTMLURL string `json:"html_url"` // release page URL
}

// FetchLatest queries the GitHub releases API at url for the newest tag.
// Transient failures are retried with backoff before giving up. Error
// messages are user-facing; they end up verbatim in the GUI and CLI.
func FetchLatest(ctx context.Context, url string) (*Release, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.UpdateCheckMaxRetries
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil
	httpClient := retryClient.StandardClient()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("Request creation error: %v", err)
	}

	// GitHub rejects requests without a User-Agent
	req.Header.Set("User-Agent", fmt.Sprintf("Wolffia/%s", version.Version))
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Network error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("GitHub API error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Response read error: %v", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("JSON parse error: %v", err)
	}

	return &release, nil
}

// CompareVersions compares two semantic version strings.
// Returns: -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2
// Strips 'v' prefix and compares major.minor.patch numerically.
// Handles development versions (e.g., v1.3.0-dev) by stripping suffix.
func CompareVersions(v1, v2 string) int {
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")

	// Strip any suffix after hyphen (e.g., "-dev", "-beta")
	if idx := strings.Index(v1, "-"); idx != -1 {
		v1 = v1[:idx]
	}
	if idx := strings.Index(v2, "-"); idx != -1 {
		v2 = v2[:idx]
	}

	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	maxLen := len(parts1)
	if len(parts2) > maxLen {
		maxLen = len(parts2)
	}

	for i := 0; i < maxLen; i++ {
		var p1, p2 int

		if i < len(parts1) {
			p1, _ = strconv.Atoi(parts1[i])
		}
		if i < len(parts2) {
			p2, _ = strconv.Atoi(parts2[i])
		}

		if p1 < p2 {
			return -1
		}
		if p1 > p2 {
			return 1
		}
	}

	return 0
}
