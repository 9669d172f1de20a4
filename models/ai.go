package models

// AIRequest is the payload coming from the frontend into /api/ai/recommend.
type AIRequest struct {
	Needs string `json:"needs" binding:"required"` // free-text need statement ("I need a family car for the weekend")
}

// AIResponse is the recommendation returned to the frontend. Recommendation
// is always a usable string: service failures degrade to a fixed fallback
// message rather than an error.
type AIResponse struct {
	Recommendation string `json:"recommendation"`
}
