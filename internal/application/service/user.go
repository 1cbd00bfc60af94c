package service

import (
	"context"

	"medialert/internal/application/dto"
	"medialert/internal/domain/entity"
)

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// UserService defines the interface for account-related business logic.
type UserService interface {
	// SignInOrSignUp signs the user in, creating the account when the email is unknown.
	SignInOrSignUp(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// GetUser finds a user by ID. Returns ErrUserNotFound if not found.
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	// GetProfile returns the public view of a user.
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
}
