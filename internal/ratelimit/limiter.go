// Package ratelimit spaces outbound requests to remote services.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultGap is the spacing used when none is configured.
// MusicBrainz asks for at most one request per second on average.
const DefaultGap = 1100 * time.Millisecond

// Limiter enforces a minimum gap between consecutive acquisitions.
// A single Limiter should be shared by every caller of the same service.
type Limiter struct {
	gap  time.Duration
	last time.Time
	mu   sync.Mutex
}

// New creates a limiter with the given gap. Non-positive gaps use DefaultGap.
func New(gap time.Duration) *Limiter {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Limiter{gap: gap}
}

// Gap returns the minimum spacing between acquisitions.
func (l *Limiter) Gap() time.Duration {
	return l.gap
}

// Acquire blocks until at least Gap has passed since the previous Acquire
// returned, then records the current time.
func (l *Limiter) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.last.IsZero() {
		if elapsed := time.Since(l.last); elapsed < l.gap {
			time.Sleep(l.gap - elapsed)
		}
	}
	l.last = time.Now()
}
