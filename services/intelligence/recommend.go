package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/utils"
)

// Fixed advisory strings. The assistant never surfaces an error to the
// customer; every failure mode resolves to one of these.
const (
	msgUnavailable   = "AI assistance is currently unavailable. Please browse our fleet manually."
	msgEmptyFallback = "I recommend checking our SUV selection for your needs."
	msgErrorFallback = "Our top pick for you would be the Toyota Land Cruiser for its reliability."
)

// FleetSummary flattens the fleet into the prompt form
// "<make> <model> (<type>, <price> Birr/day)" joined with commas.
func FleetSummary(vehicles []models.Vehicle) string {
	entries := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		entries = append(entries, fmt.Sprintf("%s %s (%s, %g Birr/day)", v.Make, v.Model, v.Type, v.PricePerDay))
	}
	return strings.Join(entries, ", ")
}

func buildPrompt(needs, fleet string) string {
	return fmt.Sprintf(`A customer needs a car. Their request is: %q.
Our available fleet: [%s].
Recommend the best vehicle from our fleet and explain why in a concise, friendly manner.
Refer to GashaDrift Car Rental in your tone. Use Birr as the currency in your response.`, needs, fleet)
}

// Recommend answers the customer's need statement with a fleet
// recommendation, degrading to a fixed message when no API key is
// configured, when the upstream call fails, or when it returns nothing.
func (s *DefaultAIService) Recommend(ctx context.Context, needs string) string {
	logger := utils.GetLogger()

	if s.generator == nil {
		return msgUnavailable
	}

	vehicles, err := s.VehicleRepo.GetAll()
	if err != nil {
		logger.Error("recommend: failed to load fleet", zap.Error(err))
		return msgErrorFallback
	}

	prompt := buildPrompt(needs, FleetSummary(vehicles))
	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("recommend: generation failed", zap.Error(err))
		return msgErrorFallback
	}
	if strings.TrimSpace(text) == "" {
		return msgEmptyFallback
	}
	return text
}
