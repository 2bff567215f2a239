// Package folio serves a personal portfolio: a landing page with GitHub
// statistics and a technology stack, and a markdown blog rendered through a
// styled, syntax-highlighting pipeline.
//
// Callers may replace any page through the ViewFuncs struct; folio owns the
// handlers, middleware, caching and feeds.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/github"
	"github.com/sh0ckwavezero/folio/markdown"
	"github.com/sh0ckwavezero/folio/views"
)

// ViewFuncs holds the page components the handlers render. Layout wraps
// every page body.
type ViewFuncs struct {
	Layout      func(site views.SiteConfig, meta views.PageMeta, jsonLD string, body templ.Component) templ.Component
	Home        func(site views.SiteConfig, d views.HomeData) templ.Component
	BlogIndex   func(posts []content.PostSummary) templ.Component
	Post        func(post content.PostSummary, body templ.Component) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Layout:      views.Layout,
		Home:        views.Home,
		BlogIndex:   views.BlogIndex,
		Post:        views.Post,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v *ViewFuncs) fillDefaults() {
	d := DefaultViews()
	if v.Layout == nil {
		v.Layout = d.Layout
	}
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.BlogIndex == nil {
		v.BlogIndex = d.BlogIndex
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App wires together the content source, caches, stats service, handlers
// and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Source   content.Source
	Cache    *PostCache
	Stats    *github.Service
	Pipeline *markdown.Pipeline
	Views    ViewFuncs

	statsStore   *github.Store
	fetcher      github.Fetcher
	thumbs       *thumbnailCache
	customRoutes []func(*App)
	staticDir    string
	ready        bool

	mu   sync.Mutex
	stop context.CancelFunc
}

// New creates an App. Nothing is opened until Setup or Start.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.fillDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.logLevel())

	a := &App{
		Config:    cfg,
		Echo:      e,
		Views:     v,
		staticDir: cfg.StaticDir,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup opens the content source and stats store and registers middleware
// and routes. Start calls it; tests may call it directly and drive Echo.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	order, err := content.ParseOrder(string(a.Config.Order))
	if err != nil {
		return fmt.Errorf("folio: %w", err)
	}

	if a.Source == nil {
		src, err := a.openSource()
		if err != nil {
			return err
		}
		a.Source = src
	}

	if a.Pipeline == nil {
		a.Pipeline = markdown.New(markdown.HighlightOptions{Style: a.Config.Theme})
	}
	a.Cache = NewPostCache(a.Source, a.Pipeline, order, a.Config.PostCacheTTL)

	if a.Stats == nil {
		svcOpts := []github.ServiceOption{github.WithLogger(a.Echo.Logger)}
		if a.Config.DatabasePath != "" {
			store, err := github.OpenStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("folio: init stats store: %w", err)
			}
			a.statsStore = store
			svcOpts = append(svcOpts, github.WithStore(store))
		}
		if a.fetcher == nil {
			a.fetcher = a.Config.StatsFetcher()
		}
		a.Stats = github.NewService(a.Config.StatsConfig(), a.fetcher, svcOpts...)
	}

	a.thumbs = newThumbnailCache(a.staticDir, thumbnailCacheSize)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

func (a *App) openSource() (content.Source, error) {
	if a.Config.ContentDir == "" {
		return content.Default(), nil
	}
	dir, err := content.OpenDir(os.DirFS(a.Config.ContentDir))
	if err != nil {
		return nil, fmt.Errorf("folio: load content %s: %w", a.Config.ContentDir, err)
	}
	return dir, nil
}

// Start sets up the app, starts the content watcher when enabled, and
// serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.stop = cancel
	a.mu.Unlock()
	defer cancel()

	if a.Config.Watch && a.Config.ContentDir != "" {
		go a.watchContent(ctx)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	if a.stop != nil {
		a.stop()
	}
	a.mu.Unlock()
	return a.Echo.Shutdown(ctx)
}

func (a *App) watchContent(ctx context.Context) {
	logger := a.Echo.Logger
	err := content.Watch(ctx, a.Config.ContentDir, content.DefaultDebounce, func() {
		if r, ok := a.Source.(interface{ Reload() error }); ok {
			if err := r.Reload(); err != nil {
				logger.Warnf("content reload failed, keeping previous posts: %v", err)
				return
			}
		}
		a.Cache.Invalidate()
		logger.Infof("content reloaded from %s", a.Config.ContentDir)
	}, func(err error) {
		logger.Warnf("content watcher: %v", err)
	})
	if err != nil {
		logger.Errorf("%v", err)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are registered before the static dir so they win.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/gradient.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/img/:width/*", a.handleThumbnail)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/api/stats", a.handleStats)
}

// Close releases the stats store.
func (a *App) Close() error {
	if a.statsStore != nil {
		return a.statsStore.Close()
	}
	return nil
}

// ParseLogLevel maps a name to a gommon level; unknown names mean INFO.
func ParseLogLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	}
	return log.INFO
}
