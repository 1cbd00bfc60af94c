package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medialert/internal/application/dto"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"

	"golang.org/x/time/rate"
)

type suggestionService struct {
	suggester RefillSuggester
	log       logger.Logger
	metrics   *metrics.Metrics

	perMinute    int
	mu           sync.Mutex
	rateLimiters map[string]*rate.Limiter
	lastCleanup  time.Time
}

// NewSuggestionService creates a new instance of SuggestionService implementation.
// perMinute limits requests per user; values below 1 default to 5.
func NewSuggestionService(suggester RefillSuggester, perMinute int, log logger.Logger, m *metrics.Metrics) SuggestionService {
	if perMinute < 1 {
		perMinute = 5
	}
	return &suggestionService{
		suggester:    suggester,
		log:          log,
		metrics:      m,
		perMinute:    perMinute,
		rateLimiters: make(map[string]*rate.Limiter),
		lastCleanup:  time.Now(),
	}
}

// getRateLimiter returns the limiter of a user.
func (s *suggestionService) getRateLimiter(userID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop idle limiters every hour
	if time.Since(s.lastCleanup) > time.Hour {
		s.rateLimiters = make(map[string]*rate.Limiter)
		s.lastCleanup = time.Now()
	}

	limiter, exists := s.rateLimiters[userID]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute)
		s.rateLimiters[userID] = limiter
	}
	return limiter
}

func (s *suggestionService) SuggestRefill(ctx context.Context, userID string, req dto.SuggestionRequest) (*dto.SuggestionResponse, error) {
	if req.Medication == "" || req.Location == "" {
		return nil, fmt.Errorf("%w: medication and location are required", appErrors.ErrValidation)
	}
	if s.suggester == nil || !s.suggester.Enabled() {
		s.metrics.SuggestionsTotal.WithLabelValues("unavailable").Inc()
		return nil, appErrors.ErrSuggestionUnavailable
	}
	if !s.getRateLimiter(userID).Allow() {
		s.metrics.SuggestionsTotal.WithLabelValues("rate_limited").Inc()
		return nil, appErrors.ErrRateLimited
	}

	suggestion, err := s.suggester.SuggestRefill(ctx, req.Medication, req.Location)
	if err != nil {
		s.metrics.SuggestionsTotal.WithLabelValues("error").Inc()
		s.log.Error(fmt.Sprintf("Refill suggestion for %q failed", req.Medication), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrSuggestionFailed, err)
	}
	s.metrics.SuggestionsTotal.WithLabelValues("ok").Inc()
	return &dto.SuggestionResponse{
		Retailer: suggestion.Retailer,
		URL:      suggestion.URL,
		Price:    suggestion.Price,
		Reason:   suggestion.Reason,
	}, nil
}
