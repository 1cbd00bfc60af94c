package service

import (
	"context"

	"medialert/internal/application/dto"
)

// RefillService manages the user's medication inventory.
type RefillService interface {
	ListRefills(ctx context.Context, userID string) ([]dto.RefillResponse, error)
	CreateRefill(ctx context.Context, userID string, req dto.RefillRequest) (*dto.RefillResponse, error)
	UpdateRefill(ctx context.Context, userID, itemID string, req dto.RefillRequest) (*dto.RefillResponse, error)
	DeleteRefill(ctx context.Context, userID, itemID string) error
}
