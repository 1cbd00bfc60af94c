// Package tone provides sinks for the repeating alert tone played while a reminder is due.
package tone

import (
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Bell writes the terminal bell character to w for every tone.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play emits one bell. Write errors are ignored; a missed beep is not actionable.
func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

// Counter counts tones on a Prometheus counter.
type Counter struct {
	c prometheus.Counter
}

// NewCounter returns a sink incrementing c.
func NewCounter(c prometheus.Counter) *Counter {
	return &Counter{c: c}
}

// Play increments the counter.
func (c *Counter) Play() {
	c.c.Inc()
}

// Player is anything that can play one tone.
type Player interface {
	Play()
}

// Multi plays every sink in order.
type Multi []Player

// Play forwards to each sink.
func (m Multi) Play() {
	for _, p := range m {
		p.Play()
	}
}
