package repository

import (
	"context"

	"medialert/internal/domain/entity"
)

// RefillRepository defines the interface for inventory data operations.
type RefillRepository interface {
	FindByID(ctx context.Context, userID, id string) (*entity.RefillItem, error)
	// FindByUserID retrieves a user's items ordered by name.
	FindByUserID(ctx context.Context, userID string) ([]*entity.RefillItem, error)
	// FindFirstByName retrieves the first item whose name equals name exactly.
	FindFirstByName(ctx context.Context, userID, name string) (*entity.RefillItem, error)
	Create(ctx context.Context, item *entity.RefillItem) error
	Update(ctx context.Context, item *entity.RefillItem) error
	// UpdateRemaining persists only the remaining quantity of an item.
	UpdateRemaining(ctx context.Context, userID, id string, remaining float64) error
	Delete(ctx context.Context, userID, id string) error
}
