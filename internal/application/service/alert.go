package service

import (
	"context"

	"medialert/internal/application/dto"
)

// AlertService exposes the due-reminder state of a user.
type AlertService interface {
	// Due returns the user's currently due reminder, or nil when none is due.
	Due(ctx context.Context, userID string) (*dto.ReminderResponse, error)
	// Acknowledge dismisses the due reminder, updating inventory and deleting the reminder.
	Acknowledge(ctx context.Context, userID string) (*dto.AcknowledgeResponse, error)
}
