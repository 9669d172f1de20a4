package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/models"
	"gashadrift/services/rental"
)

// VehicleHandler serves the public fleet browse and availability search.
type VehicleHandler struct {
	Catalog vehicleRepo.VehicleRepository
	Booking rental.BookingService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(catalog vehicleRepo.VehicleRepository, booking rental.BookingService) *VehicleHandler {
	return &VehicleHandler{Catalog: catalog, Booking: booking}
}

// ListVehiclesHandler returns the full catalog.
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	vehicles, err := h.Catalog.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// AvailableVehiclesHandler runs the availability filter for a date window.
// The location is echoed back for display; it never narrows the result.
func (h *VehicleHandler) AvailableVehiclesHandler(c *gin.Context) {
	query := models.SearchParams{
		Location:  c.Query("location"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Type:      models.VehicleType(c.Query("type")),
	}
	if query.StartDate == "" || query.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required"})
		return
	}

	vehicles, err := h.Booking.SearchAvailable(query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search dates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"location": query.Location,
		"vehicles": vehicles,
	})
}
