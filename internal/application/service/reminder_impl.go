package service

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/application/dto"
	"medialert/internal/domain/constant"
	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/validation"

	"gorm.io/gorm"
)

// DueDropper clears a user's due state when the due reminder is deleted.
type DueDropper interface {
	Drop(ctx context.Context, userID, reminderID string) error
}

type reminderService struct {
	reminderRepo repository.ReminderRepository
	due          DueDropper // may be nil
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(reminderRepo repository.ReminderRepository, due DueDropper, log logger.Logger) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		due:          due,
		log:          log,
	}
}

// CreateReminder stores a new daily reminder for the user.
func (s *reminderService) CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	reminderType := constant.ReminderType(req.Type)
	if !reminderType.Valid() {
		return nil, fmt.Errorf("%w: unknown reminder type %q", appErrors.ErrValidation, req.Type)
	}

	reminder := &entity.Reminder{
		UserID:       userID,
		MedicineName: req.MedicineName,
		// Stored zero-padded so it compares equal to the poller's clock string
		Time:     validation.NormalizeClock(req.Time),
		Type:     reminderType,
		Quantity: req.Quantity,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created reminder %s for user %s at %s", reminder.ID, userID, reminder.Time))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// ListReminders retrieves the user's reminders ordered by time.
func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// DeleteReminder removes one of the user's reminders.
func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	if err := s.reminderRepo.Delete(ctx, userID, reminderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s for user %s", reminderID, userID))
	if s.due != nil {
		if err := s.due.Drop(ctx, userID, reminderID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to clear due state for deleted reminder %s", reminderID), err)
		}
	}
	return nil
}
