package editor

import "time"

// opGuard suppresses duplicate operation triggers arriving within a short
// window, keyed by operation and target. A double-fired split gesture then
// lands as one split instead of two.
type opGuard struct {
	window time.Duration
	now    func() time.Time
	last   map[string]time.Time
}

func newOpGuard(window time.Duration, now func() time.Time) *opGuard {
	return &opGuard{
		window: window,
		now:    now,
		last:   make(map[string]time.Time),
	}
}

// allow reports whether the keyed operation may run, recording the attempt.
func (g *opGuard) allow(key string) bool {
	if g.window <= 0 {
		return true
	}
	t := g.now()
	if prev, ok := g.last[key]; ok && t.Sub(prev) < g.window {
		return false
	}
	g.last[key] = t
	return true
}
