package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/services/inventory"
)

// InventoryHandler encapsulates the admin fleet-management endpoints.
type InventoryHandler struct {
	Service inventory.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(svc inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: svc}
}

// AddVehicleHandler inserts a new vehicle. Fields come verbatim from the
// form; only the id is assigned server-side.
func (h *InventoryHandler) AddVehicleHandler(c *gin.Context) {
	var draft models.Vehicle
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	vehicle, err := h.Service.AddVehicle(draft)
	if err != nil {
		zap.L().Error("Failed to add vehicle", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vehicle"})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicleHandler merges a patch onto an existing vehicle.
func (h *InventoryHandler) UpdateVehicleHandler(c *gin.Context) {
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	vehicle, err := h.Service.UpdateVehicle(id, updates)
	if err != nil {
		var notFound *inventory.VehicleNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicleHandler removes a vehicle unconditionally. The confirmation
// prompt (including the stronger rented-vehicle warning) is the operator
// UI's responsibility.
func (h *InventoryHandler) DeleteVehicleHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteVehicle(id); err != nil {
		var notFound *inventory.VehicleNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// SearchVehiclesHandler filters the catalog for the admin dashboard.
func (h *InventoryHandler) SearchVehiclesHandler(c *gin.Context) {
	query := models.InventoryQuery{
		Text:     c.Query("search"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}

	vehicles, err := h.Service.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search vehicles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// FleetStatsHandler returns the dashboard counters.
func (h *InventoryHandler) FleetStatsHandler(c *gin.Context) {
	stats, err := h.Service.FleetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute fleet stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListReservationsHandler returns the full ledger for the admin view.
func (h *InventoryHandler) ListReservationsHandler(c *gin.Context) {
	reservations, err := h.Service.ListReservations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
