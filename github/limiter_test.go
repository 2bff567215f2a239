package github

import (
	"testing"
	"time"
)

func TestFailureLimiterBlocksAfterMax(t *testing.T) {
	l := NewFailureLimiter(2, 200*time.Millisecond)
	user := "octocat"

	if !l.Check(user) {
		t.Fatalf("expected first check to pass")
	}
	l.Record(user)
	if !l.Check(user) {
		t.Fatalf("expected check after one failure to pass")
	}
	l.Record(user)
	if l.Check(user) {
		t.Fatalf("expected check after two failures to be blocked")
	}
}

func TestFailureLimiterResetsAfterWindow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := NewFailureLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	l.Record("octocat")
	if l.Check("octocat") {
		t.Fatalf("expected block inside window")
	}
	now = now.Add(61 * time.Second)
	if !l.Check("octocat") {
		t.Fatalf("expected check after window to pass")
	}
}

func TestFailureLimiterIsPerKey(t *testing.T) {
	l := NewFailureLimiter(1, time.Minute)

	l.Record("a")
	if l.Check("a") {
		t.Fatalf("expected a to be blocked")
	}
	if !l.Check("b") {
		t.Fatalf("expected b to be allowed independently")
	}
	l.Reset("a")
	if !l.Check("a") {
		t.Fatalf("expected a to be allowed after reset")
	}
}

func TestNilFailureLimiterAllows(t *testing.T) {
	var l *FailureLimiter
	l.Record("x")
	if !l.Check("x") {
		t.Fatal("nil limiter should always allow")
	}
}
