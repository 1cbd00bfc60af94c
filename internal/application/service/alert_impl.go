package service

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/application/alert"
	"medialert/internal/application/dto"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
)

type alertService struct {
	hub *alert.Hub
	log logger.Logger
}

// NewAlertService creates a new instance of AlertService implementation.
func NewAlertService(hub *alert.Hub, log logger.Logger) AlertService {
	return &alertService{hub: hub, log: log}
}

// Due returns the user's currently due reminder, or nil when none is due.
func (s *alertService) Due(ctx context.Context, userID string) (*dto.ReminderResponse, error) {
	r, err := s.hub.Due(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	if r == nil {
		return nil, nil
	}
	resp := dto.ToReminderResponse(r)
	return &resp, nil
}

// Acknowledge dismisses the due reminder, updating inventory and deleting the reminder.
func (s *alertService) Acknowledge(ctx context.Context, userID string) (*dto.AcknowledgeResponse, error) {
	out, err := s.hub.Acknowledge(ctx, userID)
	if err != nil {
		if errors.Is(err, appErrors.ErrNoDueReminder) {
			return nil, err
		}
		s.log.Error(fmt.Sprintf("Failed to acknowledge reminder for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	s.log.Info(fmt.Sprintf("User %s acknowledged reminder %s (inventory updated: %t)", userID, out.Reminder.ID, out.InventoryUpdated))
	resp := dto.ToAcknowledgeResponse(out)
	return &resp, nil
}
