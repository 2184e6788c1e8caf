// Package frame paces the render loop and measures its rate.
package frame

import (
	"time"

	"mini-bz/internal/config"
)

// spin covers the final stretch of each wait; sleeping is too coarse
const spin = 200 * time.Microsecond

// Limiter provides high-precision frame rate limiting
type Limiter struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter creates a limiter paced by config.GetFPSLimit
func NewLimiter() *Limiter {
	return &Limiter{now: time.Now, sleep: time.Sleep}
}

// Wait blocks until the next frame is due. With no limit it returns at
// once. A frame running more than one period late resyncs the schedule
// instead of bursting to catch up.
func (l *Limiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if l.next.IsZero() {
		l.next = l.now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := l.next.Sub(l.now())
		if remaining <= 0 {
			break
		}
		if remaining > spin {
			l.sleep(remaining - spin)
		}
		if !l.now().Before(l.next) {
			break
		}
	}

	if late := l.now().Sub(l.next); late > target {
		l.next = l.now().Add(target)
	}
}

// Counter counts frames over one-second windows
type Counter struct {
	frames int
	start  time.Time
	rate   int
}

// Tick records a frame finished at now and reports whether a window
// closed, updating Rate
func (c *Counter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	if now.Sub(c.start) < time.Second {
		return false
	}
	c.rate = c.frames
	c.frames = 0
	c.start = now
	return true
}

// Rate returns the frame count of the last complete window
func (c *Counter) Rate() int { return c.rate }
