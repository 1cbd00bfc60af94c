package service

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/application/dto"
	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"

	"gorm.io/gorm"
)

type refillService struct {
	refillRepo repository.RefillRepository
	log        logger.Logger
}

// NewRefillService creates a new instance of RefillService implementation.
func NewRefillService(refillRepo repository.RefillRepository, log logger.Logger) RefillService {
	return &refillService{refillRepo: refillRepo, log: log}
}

func checkQuantities(req dto.RefillRequest) error {
	if req.TotalQuantity < 1 {
		return fmt.Errorf("%w: total quantity must be at least 1", appErrors.ErrValidation)
	}
	if req.RemainingQuantity < 0 {
		return fmt.Errorf("%w: remaining quantity cannot be negative", appErrors.ErrValidation)
	}
	return nil
}

func (s *refillService) ListRefills(ctx context.Context, userID string) ([]dto.RefillResponse, error) {
	items, err := s.refillRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list refill items for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToRefillResponseList(items), nil
}

func (s *refillService) CreateRefill(ctx context.Context, userID string, req dto.RefillRequest) (*dto.RefillResponse, error) {
	if err := checkQuantities(req); err != nil {
		return nil, err
	}
	item := &entity.RefillItem{
		UserID:            userID,
		Name:              req.Name,
		TotalQuantity:     req.TotalQuantity,
		RemainingQuantity: req.RemainingQuantity,
	}
	if err := s.refillRepo.Create(ctx, item); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create refill item for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created refill item %s (%s) for user %s", item.ID, item.Name, userID))
	resp := dto.ToRefillResponse(item)
	return &resp, nil
}

func (s *refillService) UpdateRefill(ctx context.Context, userID, itemID string, req dto.RefillRequest) (*dto.RefillResponse, error) {
	if err := checkQuantities(req); err != nil {
		return nil, err
	}
	item, err := s.refillRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRefillNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	item.Name = req.Name
	item.TotalQuantity = req.TotalQuantity
	item.RemainingQuantity = req.RemainingQuantity
	if err := s.refillRepo.Update(ctx, item); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update refill item %s", itemID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToRefillResponse(item)
	return &resp, nil
}

func (s *refillService) DeleteRefill(ctx context.Context, userID, itemID string) error {
	if err := s.refillRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrRefillNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to delete refill item %s", itemID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}
