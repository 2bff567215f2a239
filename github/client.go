package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL   = "https://api.github.com"
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "folio (+https://github.com/sh0ckwavezero/folio)"
	maxBodySize      = 1 << 20
)

// Fetcher retrieves live statistics for a user.
type Fetcher interface {
	FetchUser(ctx context.Context, user string) (Stats, error)
}

// Client fetches user statistics from the GitHub REST API.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	now       func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise host or a test server. An empty u keeps DefaultBaseURL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a Client with a bounded request timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type userResponse struct {
	PublicRepos *int `json:"public_repos"`
	Followers   *int `json:"followers"`
}

// FetchUser requests /users/<user>. Any transport error, non-2xx status or
// malformed body is reported as ErrFetchUnavailable.
func (c *Client) FetchUser(ctx context.Context, user string) (Stats, error) {
	endpoint := c.baseURL + "/users/" + url.PathEscape(user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %v", ErrFetchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return Stats{}, fmt.Errorf("%w: status %d", ErrFetchUnavailable, resp.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return Stats{}, fmt.Errorf("%w: decode: %v", ErrFetchUnavailable, err)
	}
	if body.PublicRepos == nil || body.Followers == nil || *body.PublicRepos < 0 || *body.Followers < 0 {
		return Stats{}, fmt.Errorf("%w: missing or negative counts", ErrFetchUnavailable)
	}
	return Stats{
		PublicRepoCount: *body.PublicRepos,
		FollowerCount:   *body.Followers,
		Source:          SourceLive,
		FetchedAt:       c.now(),
	}, nil
}
