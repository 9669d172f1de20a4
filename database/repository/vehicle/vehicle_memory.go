package vehicleRepo

import (
	"fmt"
	"sync"

	"gashadrift/models"
)

// MemoryVehicleRepo implements VehicleRepository over an in-process slice.
// Catalog order is insertion order and is preserved across updates; only the
// mutex makes the store safe under Gin's concurrent handlers.
type MemoryVehicleRepo struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
}

// NewMemoryVehicleRepo creates an empty in-memory catalog.
func NewMemoryVehicleRepo() *MemoryVehicleRepo {
	return &MemoryVehicleRepo{}
}

// NewSeededVehicleRepo creates an in-memory catalog pre-loaded with the
// given fleet.
func NewSeededVehicleRepo(fleet []models.Vehicle) *MemoryVehicleRepo {
	repo := &MemoryVehicleRepo{}
	repo.vehicles = append(repo.vehicles, fleet...)
	return repo
}

func (r *MemoryVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			v := r.vehicles[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("vehicle with id %q not found", id)
}

func (r *MemoryVehicleRepo) GetAll() ([]models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *MemoryVehicleRepo) Create(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == vehicle.ID {
			return fmt.Errorf("vehicle with id %q already exists", vehicle.ID)
		}
	}
	r.vehicles = append(r.vehicles, *vehicle)
	return nil
}

func (r *MemoryVehicleRepo) Update(vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == vehicle.ID {
			r.vehicles[i] = *vehicle
			return nil
		}
	}
	return fmt.Errorf("vehicle with id %q not found", vehicle.ID)
}

func (r *MemoryVehicleRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("vehicle with id %q not found", id)
}
