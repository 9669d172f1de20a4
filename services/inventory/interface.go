package inventory

import (
	reservationRepo "gashadrift/database/repository/reservation"
	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/models"
)

// InventoryService defines the admin-side fleet management operations.
type InventoryService interface {
	AddVehicle(draft models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(id string, updates map[string]interface{}) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	Search(query models.InventoryQuery) ([]models.Vehicle, error)
	FleetStats() (*FleetStats, error)
	ListReservations() ([]models.Reservation, error)
}

// DefaultInventoryService implements InventoryService over the in-memory
// catalog and ledger.
type DefaultInventoryService struct {
	VehicleRepo vehicleRepo.VehicleRepository
	LedgerRepo  reservationRepo.ReservationRepository
}

// FleetStats is the dashboard summary: headline counters plus per-status
// counts for the fleet chart. Revenue is the sum of all ledger entries in
// Birr.
type FleetStats struct {
	TotalCars    int            `json:"totalCars"`
	ActiveRents  int            `json:"activeRents"`
	Maintenance  int            `json:"maintenance"`
	TotalRevenue float64        `json:"totalRevenue"`
	StatusCounts map[string]int `json:"statusCounts"`
}
