// Package ratelimiter implements a per-identity token bucket. Buckets that
// stay idle for the expiration period are evicted to keep the map bounded.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
	timer      *time.Timer
	identity   string
	parent     *UserRateLimiter
	mu         sync.Mutex
}

// UserRateLimiter manages one token bucket per identity (user id or IP).
type UserRateLimiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64 // tokens per second
	capacity       float64
	expirationTime time.Duration
}

func New(rate, capacity float64, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (rl *UserRateLimiter) cleanup(identity string) {
	rl.mu.Lock()
	delete(rl.buckets, identity)
	rl.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.identity)
	})
}

func (rl *UserRateLimiter) getBucket(identity string) *bucket {
	rl.mu.RLock()
	b, exists := rl.buckets[identity]
	rl.mu.RUnlock()
	if exists {
		b.resetTimer()
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// Double-check after acquiring write lock
	b, exists = rl.buckets[identity]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     rl.capacity,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     rl,
	}
	rl.buckets[identity] = b
	b.resetTimer()
	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.parent.rate
	if b.tokens > b.parent.capacity {
		b.tokens = b.parent.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow checks if a request should be allowed for the given identity.
func (rl *UserRateLimiter) Allow(identity string) bool {
	return rl.getBucket(identity).allow()
}

// Stop cancels all eviction timers.
func (rl *UserRateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, b := range rl.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}

func OnceInSecond() *UserRateLimiter { return New(1, 1, 1*time.Hour) }
func Rps10() *UserRateLimiter        { return New(10, 10, 1*time.Hour) }
func Rps100() *UserRateLimiter       { return New(100, 100, 1*time.Hour) }
