// Package timer provides small duration-tracking helpers for slow paths
// (password hashing, signature checks).
package timer

import (
	"log/slog"
	"time"
)

// Track returns a function that logs the elapsed time when executed.
// Usage: defer timer.Track("password verification")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		slog.Debug("timing", "step", name, "took", time.Since(start))
	}
}

// Stopwatch measures multiple steps within one operation.
type Stopwatch struct {
	start time.Time
	last  time.Time
}

// NewStopwatch starts the clock.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, last: now}
}

// Lap logs the time taken since the last Lap call.
func (s *Stopwatch) Lap(stepName string) {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	slog.Debug("timing", "step", stepName, "took", elapsed, "total", now.Sub(s.start))
}

// Total logs the total time since the stopwatch started.
func (s *Stopwatch) Total(name string) {
	slog.Debug("timing", "step", name, "total", time.Since(s.start))
}
