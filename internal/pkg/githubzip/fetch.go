package githubzip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"k8s.io/klog/v2"
)

const (
	defaultGitHubBase   = "https://github.com/"
	defaultCodeloadBase = "https://codeload.github.com"
)

// ErrInvalidURL indicates the URL is not a GitHub repository URL.
// It is returned before any network call is made.
var ErrInvalidURL = errors.New("invalid GitHub URL")

// FetchError represents a failed archive download.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("failed to fetch GitHub ZIP from %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch GitHub ZIP from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher downloads repository zip archives from GitHub.
type Fetcher struct {
	client       *http.Client
	githubBase   string
	codeloadBase string
}

func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		githubBase:   defaultGitHubBase,
		codeloadBase: defaultCodeloadBase,
	}
}

// Fetch resolves a GitHub repository URL to zip archive bytes.
// A URL already naming a .zip resource is fetched directly; otherwise the
// main branch archive is attempted via codeload, falling back to master.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, f.githubBase) {
		return nil, ErrInvalidURL
	}

	if strings.HasSuffix(url, ".zip") {
		return f.get(ctx, url)
	}

	repoPath := strings.TrimSuffix(strings.TrimPrefix(url, f.githubBase), "/")
	var lastErr error
	for _, branch := range []string{"main", "master"} {
		zipURL := fmt.Sprintf("%s/%s/zip/refs/heads/%s", f.codeloadBase, repoPath, branch)
		data, err := f.get(ctx, zipURL)
		if err == nil {
			return data, nil
		}
		klog.V(6).Infof("branch archive fetch failed: branch=%s, error=%v", branch, err)
		lastErr = err
	}

	return nil, &FetchError{
		URL: url,
		Err: fmt.Errorf("branches 'main' or 'master' unavailable: %w", lastErr),
	}
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return data, nil
}
