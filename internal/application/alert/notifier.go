package alert

import (
	"sync"
	"time"

	"medialert/internal/infrastructure/tone"
)

// DefaultToneInterval is the pause between repeated tones.
const DefaultToneInterval = 1200 * time.Millisecond

// Notifier plays the alert tone on its own goroutine until stopped.
type Notifier struct {
	player   tone.Player
	interval time.Duration
}

// NewNotifier returns a Notifier. A non-positive interval uses DefaultToneInterval.
func NewNotifier(player tone.Player, interval time.Duration) *Notifier {
	if interval <= 0 {
		interval = DefaultToneInterval
	}
	return &Notifier{player: player, interval: interval}
}

// Start plays a tone immediately and then once per interval. The returned stop
// function halts the loop and waits for it to exit; it is safe to call more than once.
func (n *Notifier) Start() (stop func()) {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(n.interval)
		defer ticker.Stop()

		n.player.Play()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				n.player.Play()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-done
		})
	}
}
