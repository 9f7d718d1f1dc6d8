// Package github fetches the raw repository, pull request, commit and
// manifest data the analyzers consume. Every fetch helper degrades to an
// empty result on per-item failures so one bad record never sinks a report.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/dlucca/gitgauge/internal/log"
)

const (
	maxRetries   = 2
	retryBackoff = 400 * time.Millisecond
)

// retryTransport retries transient GitHub responses (429 and 5xx) with a
// short linear backoff. Rate limit exhaustion is surfaced, not retried,
// since the reset is typically minutes away.
type retryTransport struct {
	base http.RoundTripper
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; ; attempt++ {
		resp, err = t.base.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return resp, nil
		}

		_ = resp.Body.Close()
		delay := retryBackoff * time.Duration(attempt+1)
		log.Debug("retrying request", "url", req.URL.Path, "status", resp.StatusCode, "delay", delay)

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(delay):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// Client wraps the GitHub REST client.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub client. An empty token falls back to the
// GITHUB_TOKEN environment variable; unauthenticated access works but is
// heavily rate limited.
func NewClient(token string) *Client {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	var base http.RoundTripper = http.DefaultTransport
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		base = &oauth2.Transport{Source: ts, Base: base}
	} else {
		log.Warn("no GitHub token configured, unauthenticated rate limits apply")
	}

	httpClient := &http.Client{
		Transport: &retryTransport{base: base},
		Timeout:   30 * time.Second,
	}

	return &Client{gh: gh.NewClient(httpClient)}
}

// CurrentUser returns the authenticated user's login.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", redact(err))
	}
	return user.GetLogin(), nil
}

// tokenPattern matches GitHub and API key shapes that could leak into error
// text through request URLs or response bodies.
var tokenPattern = regexp.MustCompile(`(ghp_|gho_|github_pat_|sk-)[A-Za-z0-9_]+`)

// redact scrubs credential-shaped substrings from an error before it is
// logged or shown to the user.
func redact(err error) error {
	if err == nil {
		return nil
	}
	msg := tokenPattern.ReplaceAllString(err.Error(), "$1***")
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s", msg)
}

// isNotFound reports whether an error is a GitHub 404.
func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
