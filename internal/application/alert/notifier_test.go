package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierPlaysImmediately(t *testing.T) {
	p := &countingPlayer{}
	stop := NewNotifier(p, time.Hour).Start()
	assert.Eventually(t, func() bool { return p.count() == 1 }, time.Second, 5*time.Millisecond)
	stop()
	assert.Equal(t, int64(1), p.count())
}

func TestNotifierRepeatsUntilStopped(t *testing.T) {
	p := &countingPlayer{}
	stop := NewNotifier(p, 5*time.Millisecond).Start()
	assert.Eventually(t, func() bool { return p.count() >= 3 }, time.Second, time.Millisecond)

	stop()
	stopped := p.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, p.count())

	// stopping twice is harmless
	stop()
}

func TestNewNotifierDefaultsInterval(t *testing.T) {
	n := NewNotifier(&countingPlayer{}, 0)
	assert.Equal(t, DefaultToneInterval, n.interval)
}
