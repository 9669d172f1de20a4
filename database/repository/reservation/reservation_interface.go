package reservationRepo

import (
	"gashadrift/models"
)

// ReservationRepository defines methods for ledger data access.
// Reservations are append-only: once written they are never mutated or
// removed, so the interface deliberately has no update or delete.
type ReservationRepository interface {
	// GetAll retrieves all ledger entries in booking order.
	GetAll() ([]models.Reservation, error)
	// GetByVehicle retrieves all ledger entries referencing the given vehicle.
	GetByVehicle(vehicleID string) ([]models.Reservation, error)
	// Create appends a new ledger entry.
	Create(res *models.Reservation) error
}
