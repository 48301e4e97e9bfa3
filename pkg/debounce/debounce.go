package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single invocation: each
// Trigger cancels the pending timer and arms a new one, so fn runs only
// after the configured interval of inactivity.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a debouncer with the given inactivity interval.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the interval, cancelling any previously
// scheduled invocation. fn runs on its own goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation. It does not wait for a running fn.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Group manages one debouncer per key, for coalescing work per entity.
type Group struct {
	interval time.Duration

	mu         sync.Mutex
	debouncers map[string]*Debouncer
}

// NewGroup creates a keyed debouncer group with a shared interval.
func NewGroup(interval time.Duration) *Group {
	return &Group{
		interval:   interval,
		debouncers: make(map[string]*Debouncer),
	}
}

// Trigger debounces fn under the given key.
func (g *Group) Trigger(key string, fn func()) {
	g.mu.Lock()
	d, ok := g.debouncers[key]
	if !ok {
		d = New(g.interval)
		g.debouncers[key] = d
	}
	g.mu.Unlock()

	d.Trigger(fn)
}

// Stop cancels all pending invocations in the group.
func (g *Group) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range g.debouncers {
		d.Stop()
	}
	g.debouncers = make(map[string]*Debouncer)
}
