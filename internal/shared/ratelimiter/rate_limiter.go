// Package ratelimiter throttles calls to external APIs.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces a fixed number of calls per interval, blocking the
// caller once the budget is spent.
type RateLimiter struct {
	limit     int           // calls allowed per interval
	interval  time.Duration // when the budget resets
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new instance of RateLimiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded sleeps until the next interval when the budget is spent.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
