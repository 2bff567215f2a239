// Package content holds the blog's post metadata and sources.
package content

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no post has the requested slug.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateSlug is returned when two posts share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrInvalidSlug is returned for slugs that are not URL-safe.
	ErrInvalidSlug = errors.New("invalid slug")
)

// DateLayout is the publish date format used in front matter and feeds.
const DateLayout = "2006-01-02"

// PostSummary is the listing metadata of a post.
type PostSummary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image"`
	PublishDate time.Time `json:"date"`
}

// Link is the site path of the post.
func (p PostSummary) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Date formats the publish date for display.
func (p PostSummary) Date() string {
	if p.PublishDate.IsZero() {
		return ""
	}
	return p.PublishDate.Format(DateLayout)
}

// Post is a summary plus its markdown body.
type Post struct {
	PostSummary
	Body string
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ValidSlug reports whether s is already in slug form.
func ValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
