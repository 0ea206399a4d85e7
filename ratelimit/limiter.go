package ratelimit

import (
	"sync"
	"time"

	apperrors "github.com/spec-kit/helpdesk-core/pkg/util"
)

const windowDuration = 60 * time.Second

// Window is the sliding-window state kept per user.
type Window struct {
	WindowStart time.Time
	Count       int
}

// Limiter enforces a per-user requests-per-minute quota with a sliding
// window: the counter resets only once a full window has elapsed since the
// window's start, not at clock boundaries.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	windows map[string]*Window
}

// NewLimiter builds a limiter allowing perMinute requests per user.
func NewLimiter(perMinute int) *Limiter {
	return &Limiter{
		limit:   perMinute,
		windows: make(map[string]*Window),
	}
}

// Check records one request for the user at the given instant. The
// read-check-increment is atomic with respect to concurrent calls for the
// same user. A first request, or one arriving a full window after the
// window start, opens a fresh window with count 1. Within a live window
// the count is incremented first and the call fails once it exceeds the
// limit; the incremented state is kept, so the limiter heals on its own
// when the window rolls over.
func (l *Limiter) Check(userID string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[userID]
	if !ok {
		l.windows[userID] = &Window{WindowStart: now, Count: 1}
		return nil
	}
	if now.Sub(w.WindowStart) >= windowDuration {
		w.WindowStart = now
		w.Count = 1
		return nil
	}
	w.Count++
	if w.Count > l.limit {
		return apperrors.NewRateLimitExceeded()
	}
	return nil
}
