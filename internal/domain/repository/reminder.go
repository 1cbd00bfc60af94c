package repository

import (
	"context"

	"medialert/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID, scoped to a user.
	FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a user ordered by time, then creation.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindAll retrieves every reminder ordered by user, time, then creation (used by the poller).
	FindAll(ctx context.Context) ([]*entity.Reminder, error)
	// Create creates a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// Delete deletes a reminder by its ID, scoped to a user. Returns gorm.ErrRecordNotFound when nothing matched.
	Delete(ctx context.Context, userID, id string) error
	// DeleteByUserID deletes all reminders for a specific user.
	DeleteByUserID(ctx context.Context, userID string) error
}
