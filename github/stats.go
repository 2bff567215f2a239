// Package github fetches the public repository and follower counts shown on
// the landing page, with persistent revalidation and fixed fallback values.
package github

import (
	"errors"
	"time"
)

// ErrFetchUnavailable is returned when live statistics cannot be obtained.
var ErrFetchUnavailable = errors.New("github stats unavailable")

// Fallback values used whenever a live fetch fails.
const (
	DefaultPublicRepoCount = 137
	DefaultFollowerCount   = 28
)

// DefaultUser is the account whose statistics the site shows.
const DefaultUser = "Sh0ckWaveZero"

// Source tells where a Stats value came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceCached   Source = "cached"
	SourceFallback Source = "fallback"
)

// Stats holds the counts displayed in the hero card.
type Stats struct {
	PublicRepoCount int       `json:"public_repos"`
	FollowerCount   int       `json:"followers"`
	Source          Source    `json:"source"`
	FetchedAt       time.Time `json:"fetched_at,omitzero"`
}

// Fallback returns the fixed default statistics.
func Fallback() Stats {
	return Stats{
		PublicRepoCount: DefaultPublicRepoCount,
		FollowerCount:   DefaultFollowerCount,
		Source:          SourceFallback,
	}
}

// IsFallback reports whether s carries the default values rather than
// fetched ones.
func (s Stats) IsFallback() bool {
	return s.Source == SourceFallback
}
