package folio

import (
	"time"

	"github.com/labstack/gommon/log"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/github"
	"github.com/sh0ckwavezero/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Sh0ckWaveZero")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and the footer
	Lang        string // Document language (default "th")

	Addr       string // Listen address (default ":3000")
	ContentDir string // Markdown directory; empty serves the built-in posts
	StaticDir  string // User static assets (default "public")
	// DatabasePath is the SQLite file caching GitHub stats. Empty disables
	// persistence; stats are then cached in memory only.
	DatabasePath string

	GitHubUser          string        // default "Sh0ckWaveZero"
	GitHubAPIURL        string        // REST root (default https://api.github.com)
	GitHubTTL           time.Duration // revalidation window (default 24h)
	GitHubTimeout       time.Duration // per-fetch timeout (default 5s)
	GitHubMaxFailures   int           // failures before fetches are suppressed (default 3)
	GitHubFailureWindow time.Duration // window for GitHubMaxFailures (default 5min)

	PostCacheTTL time.Duration // Post cache TTL (default 5min)
	Order        content.Order // Listing order (default declared)
	Theme        string        // chroma style (default monokai)
	Watch        bool          // Reload ContentDir on change
	LogLevel     string        // debug, info, warn, error, off
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Sh0ckWaveZero"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Lang == "" {
		c.Lang = "th"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.GitHubUser == "" {
		c.GitHubUser = github.DefaultUser
	}
	if c.GitHubTTL == 0 {
		c.GitHubTTL = github.DefaultTTL
	}
	if c.GitHubTimeout == 0 {
		c.GitHubTimeout = github.DefaultFetchTimeout
	}
	if c.GitHubMaxFailures == 0 {
		c.GitHubMaxFailures = 3
	}
	if c.GitHubFailureWindow == 0 {
		c.GitHubFailureWindow = 5 * time.Minute
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.Order == "" {
		c.Order = content.OrderDeclared
	}
}

func (c SiteConfig) logLevel() log.Lvl {
	return ParseLogLevel(c.LogLevel)
}

// StatsConfig returns the github.Service settings carried by c.
func (c SiteConfig) StatsConfig() github.Config {
	return github.Config{
		User:          c.GitHubUser,
		TTL:           c.GitHubTTL,
		FetchTimeout:  c.GitHubTimeout,
		MaxFailures:   c.GitHubMaxFailures,
		FailureWindow: c.GitHubFailureWindow,
	}
}

// StatsFetcher returns the GitHub client for c.
func (c SiteConfig) StatsFetcher() github.Fetcher {
	return github.NewClient(github.WithBaseURL(c.GitHubAPIURL))
}

func (c SiteConfig) view() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
		Lang:        c.Lang,
		GitHubUser:  c.GitHubUser,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource serves posts from src instead of ContentDir.
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.Source = src
	}
}

// WithFetcher replaces the GitHub API client.
func WithFetcher(f github.Fetcher) Option {
	return func(a *App) {
		a.fetcher = f
	}
}

// WithStatsService replaces the whole stats service.
func WithStatsService(s *github.Service) Option {
	return func(a *App) {
		a.Stats = s
	}
}
