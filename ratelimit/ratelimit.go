package ratelimit

import (
	"errors"
	"sync"
	"time"
)

const (
	DefaultLimit  = 5
	DefaultWindow = time.Hour
)

var ErrRateLimited = errors.New("rate limit exceeded")

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window request counter keyed by client.
// It is process local and forgets everything on restart.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*entry
	nextSweep time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return newLimiterWithClock(limit, window, time.Now)
}

func newLimiterWithClock(limit int, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		limit:     limit,
		window:    window,
		now:       now,
		entries:   map[string]*entry{},
		nextSweep: now().Add(window),
	}
}

// Allow records a request for clientKey and returns ErrRateLimited once
// the client has gone over the limit for its current window.
func (l *Limiter) Allow(clientKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[clientKey]
	if !ok {
		l.entries[clientKey] = &entry{count: 1, resetAt: now.Add(l.window)}
		return nil
	}

	if !now.Before(e.resetAt) {
		e.count = 1
		e.resetAt = now.Add(l.window)
		return nil
	}

	e.count++
	if e.count > l.limit {
		return ErrRateLimited
	}

	return nil
}

// Len is the number of clients currently tracked.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// sweep drops expired entries at most once per window. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}

	for k, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, k)
		}
	}

	l.nextSweep = now.Add(l.window)
}
