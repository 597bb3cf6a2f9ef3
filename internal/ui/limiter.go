package ui

import "time"

// FrameLimiter caps how often frames are presented.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewFrameLimiter allows at most fps frames per second. Zero or negative disables limiting.
func NewFrameLimiter(fps int) *FrameLimiter {
	l := &FrameLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Wait sleeps out whatever remains of the current frame interval.
func (l *FrameLimiter) Wait() {
	if l.interval <= 0 {
		return
	}
	if !l.last.IsZero() {
		if remaining := l.interval - l.now().Sub(l.last); remaining > 0 {
			l.sleep(remaining)
		}
	}
	l.last = l.now()
}
