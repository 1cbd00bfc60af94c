package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medialert/internal/application/dto"
	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	"medialert/internal/infrastructure/auth"
	appErrors "medialert/internal/pkg/errors" // Alias to avoid collision
	"medialert/internal/pkg/logger"

	"gorm.io/gorm"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	log      logger.Logger
	now      func() time.Time
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(userRepo repository.UserRepository, tokens TokenIssuer, log logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
		now:      time.Now,
	}
}

// SignInOrSignUp signs the user in, creating the account when the email is unknown.
func (s *userService) SignInOrSignUp(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: email and a password of at least 6 characters are required", appErrors.ErrValidation)
	}

	created := false
	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.signUp(ctx, email, req.Password)
		if err != nil {
			return nil, err
		}
		created = true
	case err != nil:
		s.log.Error("Failed to look up user by email", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	default:
		if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, appErrors.ErrInvalidCredentials
		}
	}

	loginAt := s.now()
	user.LastLogin = &loginAt
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Not fatal; the login itself succeeded.
		s.log.Error(fmt.Sprintf("Failed to record last login for user %s", user.ID), err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	return &dto.LoginResponse{
		Token:   token,
		Created: created,
		User:    dto.ToProfileResponse(user),
	}, nil
}

func (s *userService) signUp(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	user := &entity.User{Email: email, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created user %s", user.ID))
	return user, nil
}

// GetUser finds a user by ID. Returns ErrUserNotFound if not found.
func (s *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound // Return specific app error
		}
		s.log.Error(fmt.Sprintf("Failed to get user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return user, nil
}

// GetProfile returns the public view of a user.
func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProfileResponse(user)
	return &resp, nil
}
