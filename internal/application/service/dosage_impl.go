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

type dosageService struct {
	dosageRepo repository.DosageRepository
	log        logger.Logger
}

// NewDosageService creates a new instance of DosageService implementation.
func NewDosageService(dosageRepo repository.DosageRepository, log logger.Logger) DosageService {
	return &dosageService{dosageRepo: dosageRepo, log: log}
}

func (s *dosageService) ListDosages(ctx context.Context, userID string) ([]dto.DosageResponse, error) {
	dosages, err := s.dosageRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list dosages for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToDosageResponseList(dosages), nil
}

func (s *dosageService) CreateDosage(ctx context.Context, userID string, req dto.DosageRequest) (*dto.DosageResponse, error) {
	dosage := &entity.Dosage{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Time:     req.Time,
	}
	if err := s.dosageRepo.Create(ctx, dosage); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create dosage for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToDosageResponse(dosage)
	return &resp, nil
}

func (s *dosageService) UpdateDosage(ctx context.Context, userID, dosageID string, req dto.DosageRequest) (*dto.DosageResponse, error) {
	dosage, err := s.dosageRepo.FindByID(ctx, userID, dosageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDosageNotFound
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	dosage.Name = req.Name
	dosage.Quantity = req.Quantity
	dosage.Time = req.Time
	if err := s.dosageRepo.Update(ctx, dosage); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update dosage %s", dosageID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToDosageResponse(dosage)
	return &resp, nil
}

func (s *dosageService) DeleteDosage(ctx context.Context, userID, dosageID string) error {
	if err := s.dosageRepo.Delete(ctx, userID, dosageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrDosageNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to delete dosage %s", dosageID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}
