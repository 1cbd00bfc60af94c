package dto

import "time"

// FeedbackRequest is the DTO for submitting feedback. The email is taken from the profile.
type FeedbackRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

// FeedbackResponse acknowledges stored feedback.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
