package ai

import (
	"context"

	vehicleRepo "gashadrift/database/repository/vehicle"
)

// RecommendationService answers free-text vehicle-need statements with a
// recommendation drawn from the current fleet. It never fails: every error
// condition degrades to a fixed advisory string.
type RecommendationService interface {
	Recommend(ctx context.Context, needs string) string
}

// contentGenerator abstracts the text-generation backend so tests can stub
// it out.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultAIService implements RecommendationService on top of Gemini. A nil
// generator means no API key was configured.
type DefaultAIService struct {
	generator   contentGenerator
	VehicleRepo vehicleRepo.VehicleRepository
}

// NewDefaultAIService wires the recommendation service. With an empty API
// key the service short-circuits to the unavailable message instead of
// calling out.
func NewDefaultAIService(apiKey string, repo vehicleRepo.VehicleRepository) *DefaultAIService {
	svc := &DefaultAIService{VehicleRepo: repo}
	if apiKey != "" {
		svc.generator = NewGeminiClient(apiKey)
	}
	return svc
}
