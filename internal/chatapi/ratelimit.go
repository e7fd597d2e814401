package chatapi

import (
	"sync"
	"time"
)

// Limiter is a token bucket refilled at rpm tokens per minute. A nil
// *Limiter allows everything.
type Limiter struct {
	rpm int
	now func() time.Time

	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

// NewLimiter allows at most rpm asks per minute. rpm <= 0 disables limiting
// and returns nil.
func NewLimiter(rpm int) *Limiter {
	if rpm <= 0 {
		return nil
	}
	return newLimiterAt(rpm, time.Now)
}

func newLimiterAt(rpm int, now func() time.Time) *Limiter {
	return &Limiter{rpm: rpm, now: now, tokens: rpm, lastFill: now()}
}

// Allow takes a token if one is available. It never blocks.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	refill := int(now.Sub(l.lastFill).Seconds() * float64(l.rpm) / 60.0)
	if refill > 0 {
		l.tokens = min(l.tokens+refill, l.rpm)
		l.lastFill = now
	}

	if l.tokens == 0 {
		return false
	}
	l.tokens--
	return true
}
