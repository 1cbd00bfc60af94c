package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medialert/internal/infrastructure/scheduler"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const (
	jobTypePoll = "poll"
	// DefaultPollSpec runs the due-check at second 0 and 30 of every minute.
	DefaultPollSpec = "0,30 * * * * *"
	// pollTimeout bounds a single due-check.
	pollTimeout = 20 * time.Second
)

// Poller is the due-check run on every tick.
type Poller interface {
	Poll(ctx context.Context) error
}

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	poller        Poller
	spec          string
	log           logger.Logger
	// map[jobType]cron.EntryID
	jobStore map[string]cron.EntryID
	mu       sync.Mutex // Protect jobStore access
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(cronScheduler *scheduler.Scheduler, poller Poller, spec string, log logger.Logger) SchedulerService {
	if spec == "" {
		spec = DefaultPollSpec
	}
	return &schedulerService{
		cronScheduler: cronScheduler,
		poller:        poller,
		spec:          spec,
		log:           log,
		jobStore:      make(map[string]cron.EntryID),
	}
}

// storeJobID stores the cron EntryID for a job type.
func (s *schedulerService) storeJobID(jobType string, entryID cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStore[jobType] = entryID
	s.log.Debug(fmt.Sprintf("Stored job ID %d, type %s", entryID, jobType))
}

// removeJobID removes and returns the cron EntryID for a job type.
func (s *schedulerService) removeJobID(jobType string) (cron.EntryID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, ok := s.jobStore[jobType]
	if ok {
		delete(s.jobStore, jobType)
	}
	return entryID, ok
}

// PollNow runs a single due-check.
func (s *schedulerService) PollNow(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()
	return s.poller.Poll(ctx)
}

// Start runs one due-check immediately, schedules the recurring check and starts the scheduler.
func (s *schedulerService) Start(ctx context.Context) error {
	if err := s.PollNow(ctx); err != nil {
		// A failed first check is not fatal; the next tick retries.
		s.log.Error("Initial reminder due-check failed", err)
	}

	// Replace an existing poll job, if any
	if entryID, ok := s.removeJobID(jobTypePoll); ok {
		s.cronScheduler.RemoveJob(entryID)
	}

	jobFunc := func() {
		if err := s.PollNow(ctx); err != nil {
			s.log.Error("Reminder due-check failed", err)
		}
	}

	entryID, err := s.cronScheduler.AddJob(s.spec, jobFunc)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.storeJobID(jobTypePoll, entryID)
	s.cronScheduler.Start()

	s.log.Info(fmt.Sprintf("Scheduled reminder due-check with spec %q (Job ID: %d)", s.spec, entryID))
	s.log.Debug(fmt.Sprintf("Current cron entries: %v", s.cronScheduler.GetEntries()))
	return nil
}

// Stop removes the recurring check and stops the underlying scheduler.
func (s *schedulerService) Stop() {
	if entryID, ok := s.removeJobID(jobTypePoll); ok {
		s.cronScheduler.RemoveJob(entryID)
		s.log.Info(fmt.Sprintf("Cancelled reminder due-check (Job ID: %d)", entryID))
	}
	s.cronScheduler.Stop()
}
