package folio

import (
	"context"
	"sync"
	"time"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/markdown"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = content.ErrNotFound

// PostCache is an in-memory cache of the post listing and rendered post
// bodies with a TTL.
type PostCache struct {
	mu       sync.RWMutex
	posts    []content.PostSummary
	rendered map[string]*markdown.Node
	fetched  time.Time
	ttl      time.Duration

	source   content.Source
	pipeline *markdown.Pipeline
	order    content.Order
}

// NewPostCache creates a PostCache over src.
func NewPostCache(src content.Source, p *markdown.Pipeline, order content.Order, ttl time.Duration) *PostCache {
	return &PostCache{
		source:   src,
		pipeline: p,
		order:    order,
		ttl:      ttl,
	}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.rendered = nil
	c.mu.Unlock()
}

func (c *PostCache) load() {
	if c.valid() {
		return
	}
	c.posts = content.List(c.source, c.order)
	c.rendered = make(map[string]*markdown.Node, len(c.posts))
	c.fetched = time.Now()
}

// ensureLoaded tries a read lock first; only takes a write lock if a reload
// is needed.
func (c *PostCache) ensureLoaded() []content.PostSummary {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.posts
}

// ListPosts returns the listing in the configured order.
func (c *PostCache) ListPosts() ([]content.PostSummary, error) {
	return c.ensureLoaded(), nil
}

// GetPost returns a post by slug.
func (c *PostCache) GetPost(slug string) (content.Post, error) {
	c.ensureLoaded()
	return c.source.Post(slug)
}

// Rendered returns the styled markup tree of post, rendering it on first
// use. The tree is shared between requests and must not be modified.
func (c *PostCache) Rendered(ctx context.Context, post content.Post) (*markdown.Node, error) {
	c.ensureLoaded()

	c.mu.RLock()
	out, ok := c.rendered[post.Slug]
	c.mu.RUnlock()
	if ok {
		return out, nil
	}

	out, err := c.pipeline.Render(ctx, post.Body)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.rendered != nil {
		c.rendered[post.Slug] = out
	}
	c.mu.Unlock()
	return out, nil
}
