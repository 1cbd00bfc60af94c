package service

import (
	"context"

	"medialert/internal/application/dto"
	"medialert/internal/infrastructure/openai"
)

// RefillSuggester is the language-model backend for refill suggestions.
type RefillSuggester interface {
	Enabled() bool
	SuggestRefill(ctx context.Context, medication, location string) (*openai.Suggestion, error)
}

// SuggestionService recommends where to refill a medication.
type SuggestionService interface {
	SuggestRefill(ctx context.Context, userID string, req dto.SuggestionRequest) (*dto.SuggestionResponse, error)
}
