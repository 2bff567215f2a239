package content

import (
	"fmt"
	"sort"
	"time"
)

// Source supplies the blog's posts.
type Source interface {
	// ListPosts returns summaries in the source's declared order.
	ListPosts() []PostSummary
	// Post returns the post with slug, or ErrNotFound.
	Post(slug string) (Post, error)
}

// Static is an immutable, in-memory Source.
type Static struct {
	posts  []Post
	bySlug map[string]int
}

// NewStatic builds a Static source keeping the given order. Slugs must be
// URL-safe and unique.
func NewStatic(posts ...Post) (*Static, error) {
	s := &Static{
		posts:  make([]Post, 0, len(posts)),
		bySlug: make(map[string]int, len(posts)),
	}
	for _, p := range posts {
		if !ValidSlug(p.Slug) {
			return nil, fmt.Errorf("content: %w: %q", ErrInvalidSlug, p.Slug)
		}
		if _, ok := s.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("content: %w: %q", ErrDuplicateSlug, p.Slug)
		}
		s.bySlug[p.Slug] = len(s.posts)
		s.posts = append(s.posts, p)
	}
	return s, nil
}

// ListPosts implements Source.
func (s *Static) ListPosts() []PostSummary {
	out := make([]PostSummary, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.PostSummary
	}
	return out
}

// Post implements Source.
func (s *Static) Post(slug string) (Post, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Post{}, ErrNotFound
	}
	return s.posts[i], nil
}

// Order is the listing order policy.
type Order string

const (
	// OrderDeclared keeps the order the source declares.
	OrderDeclared Order = "declared"
	// OrderDateDesc lists newest posts first; ties keep declared order.
	OrderDateDesc Order = "date-desc"
)

// ParseOrder validates an order name. The empty string means OrderDeclared.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderDeclared:
		return OrderDeclared, nil
	case OrderDateDesc:
		return OrderDateDesc, nil
	}
	return "", fmt.Errorf("content: unknown order %q", s)
}

// Sorted returns a copy of posts arranged by o.
func Sorted(posts []PostSummary, o Order) []PostSummary {
	out := make([]PostSummary, len(posts))
	copy(out, posts)
	if o == OrderDateDesc {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishDate.After(out[j].PublishDate)
		})
	}
	return out
}

// List returns the posts of src arranged by o.
func List(src Source, o Order) []PostSummary {
	return Sorted(src.ListPosts(), o)
}

func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
