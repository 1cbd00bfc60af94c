package repository

import (
	"context"

	"medialert/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error
	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error
}
