package dto

import (
	"time"

	"medialert/internal/domain/entity"
)

// LoginRequest is the DTO for signing in or signing up.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// ToProfileResponse converts an entity.User to a ProfileResponse DTO.
func ToProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// LoginResponse carries the bearer token and the signed-in profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Created bool            `json:"created"`
	User    ProfileResponse `json:"user"`
}
