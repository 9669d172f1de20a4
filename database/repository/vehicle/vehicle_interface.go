package vehicleRepo

import (
	"gashadrift/models"
)

// VehicleRepository defines methods for fleet catalog data access.
type VehicleRepository interface {
	// GetByID retrieves a vehicle by its unique ID.
	GetByID(id string) (*models.Vehicle, error)
	// GetAll retrieves all vehicles in catalog order.
	GetAll() ([]models.Vehicle, error)
	// Create inserts a new vehicle record.
	Create(vehicle *models.Vehicle) error
	// Update replaces an existing vehicle record by its ID.
	Update(vehicle *models.Vehicle) error
	// Delete removes a vehicle record by its ID.
	Delete(id string) error
}
