package scheduler

import (
	"testing"
	"time"

	"medialert/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerJobs(t *testing.T) {
	s := NewScheduler(logger.NewNop(), time.UTC)

	id, err := s.AddJob("0,30 * * * * *", func() {})
	require.NoError(t, err)
	require.Len(t, s.GetEntries(), 1)

	s.RemoveJob(id)
	assert.Empty(t, s.GetEntries())

	_, err = s.AddJob("not a spec", func() {})
	assert.Error(t, err)
}

func TestSchedulerRunsJobs(t *testing.T) {
	s := NewScheduler(logger.NewNop(), time.UTC)
	fired := make(chan struct{}, 1)
	_, err := s.AddJob("* * * * * *", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	s.Start()
	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler(logger.NewNop(), nil)
	s.Stop()
}
