package gormdb

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find reminder by id %s: %w", id, err)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a specific user.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("time asc, created_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find reminders by user_id %s: %w", userID, err)
	}
	return reminders, nil
}

// FindAll retrieves all reminders (used by the due-check poller).
func (r *reminderRepository) FindAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Order("user_id asc, time asc, created_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find all reminders: %w", err)
	}
	return reminders, nil
}

// Create creates a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// Delete deletes a reminder by its ID.
func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Reminder{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteByUserID deletes all reminders for a specific user.
func (r *reminderRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("failed to delete reminders for user %s: %w", userID, err)
	}
	return nil
}
