package service

import (
	"context"
)

// SchedulerService drives the periodic reminder due-check.
type SchedulerService interface {
	// Start runs one due-check immediately, schedules the recurring check and starts the scheduler.
	Start(ctx context.Context) error
	// PollNow runs a single due-check.
	PollNow(ctx context.Context) error
	// Stop removes the recurring check and stops the underlying scheduler.
	Stop()
}
