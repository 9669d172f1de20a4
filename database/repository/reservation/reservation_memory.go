package reservationRepo

import (
	"fmt"
	"sync"

	"gashadrift/models"
)

// MemoryReservationRepo implements ReservationRepository over an in-process
// append-only slice guarded by a mutex.
type MemoryReservationRepo struct {
	mu           sync.RWMutex
	reservations []models.Reservation
}

// NewMemoryReservationRepo creates an empty in-memory ledger.
func NewMemoryReservationRepo() *MemoryReservationRepo {
	return &MemoryReservationRepo{}
}

func (r *MemoryReservationRepo) GetAll() ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *MemoryReservationRepo) GetByVehicle(vehicleID string) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Reservation
	for i := range r.reservations {
		if r.reservations[i].VehicleID == vehicleID {
			out = append(out, r.reservations[i])
		}
	}
	return out, nil
}

func (r *MemoryReservationRepo) Create(res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			return fmt.Errorf("reservation with id %q already exists", res.ID)
		}
	}
	r.reservations = append(r.reservations, *res)
	return nil
}
