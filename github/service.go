package github

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a fetched result is served before refetching.
	DefaultTTL = 24 * time.Hour
	// DefaultFetchTimeout bounds a single live fetch.
	DefaultFetchTimeout = 5 * time.Second
)

// Config holds the Service settings. Zero values take defaults.
type Config struct {
	User         string
	TTL          time.Duration
	FetchTimeout time.Duration
	// MaxFailures within FailureWindow suppress further fetches. Zero
	// disables the limiter.
	MaxFailures   int
	FailureWindow time.Duration
}

func (c *Config) setDefaults() {
	if c.User == "" {
		c.User = DefaultUser
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.FailureWindow <= 0 {
		c.FailureWindow = 5 * time.Minute
	}
}

// Service returns the statistics for the configured user. It serves a
// fresh in-memory or stored value when one exists, fetches otherwise, and
// falls back to the default values when fetching fails.
type Service struct {
	cfg     Config
	fetcher Fetcher
	store   *Store
	limiter *FailureLimiter
	logger  echo.Logger
	now     func() time.Time

	group singleflight.Group

	mu     sync.RWMutex
	cached Stats
	ok     bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStore enables persistent revalidation through s.
func WithStore(s *Store) ServiceOption {
	return func(svc *Service) { svc.store = s }
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l echo.Logger) ServiceOption {
	return func(svc *Service) {
		if l != nil {
			svc.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(svc *Service) { svc.now = now }
}

// NewService builds a Service around f. A nil f uses a default Client.
func NewService(cfg Config, f Fetcher, opts ...ServiceOption) *Service {
	cfg.setDefaults()
	if f == nil {
		f = NewClient()
	}
	svc := &Service{
		cfg:     cfg,
		fetcher: f,
		logger:  log.New("github"),
		now:     time.Now,
	}
	if cfg.MaxFailures > 0 {
		svc.limiter = NewFailureLimiter(cfg.MaxFailures, cfg.FailureWindow)
	}
	for _, o := range opts {
		o(svc)
	}
	if svc.limiter != nil {
		svc.limiter.now = svc.now
	}
	return svc
}

// User returns the account the service reports on.
func (s *Service) User() string {
	return s.cfg.User
}

func (s *Service) fresh(st Stats) bool {
	return s.now().Sub(st.FetchedAt) < s.cfg.TTL
}

// Stats never fails: the worst case is Fallback(). Concurrent callers share
// one fetch; each stops waiting when its own ctx is done.
func (s *Service) Stats(ctx context.Context) Stats {
	if st, ok := s.memory(); ok {
		return st
	}

	// The fetch outlives any single caller; FetchTimeout bounds it.
	ch := s.group.DoChan(s.cfg.User, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx)), nil
	})
	select {
	case res := <-ch:
		return res.Val.(Stats)
	case <-ctx.Done():
		s.logger.Warnf("github: gave up waiting for %s stats: %v", s.cfg.User, ctx.Err())
		return Fallback()
	}
}

func (s *Service) memory() (Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ok && s.fresh(s.cached) {
		return s.cached, true
	}
	return Stats{}, false
}

func (s *Service) remember(st Stats) {
	st.Source = SourceCached
	s.mu.Lock()
	s.cached, s.ok = st, true
	s.mu.Unlock()
}

// refresh runs at most once at a time per user.
func (s *Service) refresh(ctx context.Context) Stats {
	if st, ok := s.memory(); ok {
		return st
	}
	if st, ok := s.loadStored(); ok {
		s.remember(st)
		return st
	}

	if !s.limiter.Check(s.cfg.User) {
		s.logger.Warnf("github: fetch for %s suppressed after repeated failures", s.cfg.User)
		return Fallback()
	}

	fctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()
	st, err := s.fetcher.FetchUser(fctx, s.cfg.User)
	if err != nil {
		s.limiter.Record(s.cfg.User)
		s.logger.Warnf("github: using fallback stats for %s: %v", s.cfg.User, err)
		return Fallback()
	}
	s.limiter.Reset(s.cfg.User)

	if st.FetchedAt.IsZero() {
		st.FetchedAt = s.now()
	}
	st.Source = SourceLive
	if s.store != nil {
		if err := s.store.Save(s.cfg.User, st); err != nil {
			s.logger.Errorf("%v", err)
		}
	}
	s.remember(st)
	return st
}

func (s *Service) loadStored() (Stats, bool) {
	if s.store == nil {
		return Stats{}, false
	}
	st, ok, err := s.store.Get(s.cfg.User)
	if err != nil {
		s.logger.Errorf("%v", err)
		return Stats{}, false
	}
	if !ok || !s.fresh(st) {
		return Stats{}, false
	}
	return st, true
}
