package service

import (
	"context"

	"medialert/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
type ReminderService interface {
	// CreateReminder stores a new daily reminder for the user.
	CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	// ListReminders retrieves the user's reminders ordered by time.
	ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	// DeleteReminder removes one of the user's reminders.
	DeleteReminder(ctx context.Context, userID, reminderID string) error
}
