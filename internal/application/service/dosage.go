package service

import (
	"context"

	"medialert/internal/application/dto"
)

// DosageService manages the user's dosage log.
type DosageService interface {
	ListDosages(ctx context.Context, userID string) ([]dto.DosageResponse, error)
	CreateDosage(ctx context.Context, userID string, req dto.DosageRequest) (*dto.DosageResponse, error)
	UpdateDosage(ctx context.Context, userID, dosageID string, req dto.DosageRequest) (*dto.DosageResponse, error)
	DeleteDosage(ctx context.Context, userID, dosageID string) error
}
