// Package flood limits how often a single sender may hit a throttled action.
package flood

import (
	"sync"
	"time"
)

const (
	// windowDuration is the sliding window every limit is counted over
	windowDuration = 60 * time.Second
	// cleanupInterval is how often idle senders are dropped
	cleanupInterval = 10 * time.Minute
	// idleTimeout is how long a sender may stay quiet before it is forgotten
	idleTimeout = 10 * time.Minute
)

// Floodgate is a per-sender sliding window limiter. Keys are "scope:sender",
// so one sender is tracked separately for every throttled action.
type Floodgate struct {
	limitPerMinute int
	entries        map[string]*senderEntry
	mutex          sync.RWMutex
	now            func() time.Time
	stopCleanup    chan struct{}
	stopOnce       sync.Once
}

type senderEntry struct {
	timestamps []time.Time
	lastSeen   time.Time
}

// Option configures a Floodgate.
type Option func(*Floodgate)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(fg *Floodgate) { fg.now = now }
}

// New creates a Floodgate allowing limitPerMinute hits per key. A limit of
// zero or less disables throttling.
func New(limitPerMinute int, opts ...Option) *Floodgate {
	fg := &Floodgate{
		limitPerMinute: limitPerMinute,
		entries:        make(map[string]*senderEntry),
		now:            time.Now,
		stopCleanup:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(fg)
	}

	go fg.cleanup()

	return fg
}

// Stop ends the background cleanup. It is safe to call more than once.
func (fg *Floodgate) Stop() {
	fg.stopOnce.Do(func() { close(fg.stopCleanup) })
}

// Allow records a hit for sender in scope and reports whether it is within
// the limit. Rejected hits are not counted.
func (fg *Floodgate) Allow(scope, sender string) bool {
	if fg.limitPerMinute <= 0 {
		return true
	}

	key := scope + ":" + sender
	now := fg.now()

	fg.mutex.Lock()
	defer fg.mutex.Unlock()

	entry, exists := fg.entries[key]
	if !exists {
		entry = &senderEntry{
			timestamps: make([]time.Time, 0, fg.limitPerMinute+1),
		}
		fg.entries[key] = entry
	}
	entry.lastSeen = now
	entry.prune(now)

	if len(entry.timestamps) >= fg.limitPerMinute {
		return false
	}

	entry.timestamps = append(entry.timestamps, now)
	return true
}

// RetryAfter returns how long sender must wait before the next hit in scope
// is allowed, or zero when it would be allowed now.
func (fg *Floodgate) RetryAfter(scope, sender string) time.Duration {
	if fg.limitPerMinute <= 0 {
		return 0
	}

	now := fg.now()

	fg.mutex.Lock()
	defer fg.mutex.Unlock()

	entry, exists := fg.entries[scope+":"+sender]
	if !exists {
		return 0
	}
	entry.prune(now)
	if len(entry.timestamps) < fg.limitPerMinute {
		return 0
	}
	return entry.timestamps[0].Add(windowDuration).Sub(now)
}

func (e *senderEntry) prune(now time.Time) {
	windowStart := now.Add(-windowDuration)
	valid := e.timestamps[:0]
	for _, ts := range e.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	e.timestamps = valid
}

func (fg *Floodgate) cleanup() {
	fg.performCleanup()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fg.performCleanup()
		case <-fg.stopCleanup:
			return
		}
	}
}

func (fg *Floodgate) performCleanup() {
	fg.mutex.Lock()
	defer fg.mutex.Unlock()

	cutoff := fg.now().Add(-idleTimeout)
	for key, entry := range fg.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(fg.entries, key)
		}
	}
}

// GetStats returns a snapshot for the status endpoint.
func (fg *Floodgate) GetStats() Stats {
	fg.mutex.RLock()
	defer fg.mutex.RUnlock()

	return Stats{
		ActiveSenders:  len(fg.entries),
		LimitPerMinute: fg.limitPerMinute,
		WindowSeconds:  int(windowDuration.Seconds()),
	}
}

// Stats contains floodgate statistics
type Stats struct {
	ActiveSenders  int `json:"active_senders"`
	LimitPerMinute int `json:"limit_per_minute"`
	WindowSeconds  int `json:"window_seconds"`
}
