package github

import (
	"sync"
	"time"
)

// FailureLimiter counts failed fetches per key in a sliding window. Once a
// key reaches max failures, Check reports false until old failures expire.
type FailureLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time
}

// NewFailureLimiter allows max failures per window.
func NewFailureLimiter(max int, window time.Duration) *FailureLimiter {
	return &FailureLimiter{
		failures: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// Check returns true if key has not exceeded the failure budget.
// It does not record anything; call Record on failure.
func (l *FailureLimiter) Check(key string) bool {
	if l == nil || l.max <= 0 {
		return true
	}
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.failures[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
	} else {
		l.failures[key] = kept
	}
	return len(kept) < l.max
}

// Record registers a failed fetch for key.
func (l *FailureLimiter) Record(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.failures[key] = append(l.failures[key], l.now())
	l.mu.Unlock()
}

// Reset forgets all failures for key, typically after a success.
func (l *FailureLimiter) Reset(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	delete(l.failures, key)
	l.mu.Unlock()
}
