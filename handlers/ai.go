package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gashadrift/models"
	ai "gashadrift/services/intelligence"
)

// AIHandler exposes the smart-assistant recommendation endpoint.
type AIHandler struct {
	Service ai.RecommendationService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(svc ai.RecommendationService) *AIHandler {
	return &AIHandler{Service: svc}
}

// RecommendHandler answers a free-text need statement with a fleet
// recommendation. The response is always 200: service failures degrade to a
// fixed advisory message rather than an error.
func (h *AIHandler) RecommendHandler(c *gin.Context) {
	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	text := h.Service.Recommend(c.Request.Context(), req.Needs)
	c.JSON(http.StatusOK, models.AIResponse{Recommendation: text})
}
