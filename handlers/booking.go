package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/services/rental"
)

// BookingHandler exposes the rental quote and confirmation workflow.
type BookingHandler struct {
	Service rental.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc rental.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// QuoteHandler prices a vehicle over a date window without booking it.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.Service.QuoteReservation(input.VehicleID, input.StartDate, input.EndDate)
	if err != nil {
		var notFound *rental.VehicleNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rental dates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ConfirmBookingHandler creates the reservation from the selected vehicle,
// the date window, and the submitted verification payload.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var input struct {
		VehicleID      string                     `json:"vehicleId" binding:"required"`
		StartDate      string                     `json:"startDate" binding:"required"`
		EndDate        string                     `json:"endDate" binding:"required"`
		PickupLocation string                     `json:"pickupLocation" binding:"required"`
		Verification   models.VerificationPayload `json:"verification" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Service.CreateReservation(
		input.VehicleID, input.StartDate, input.EndDate, input.PickupLocation, input.Verification)
	if err != nil {
		var notFound *rental.VehicleNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		h.Logger.Error("booking confirmation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to confirm booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservation)
}
