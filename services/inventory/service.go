package inventory

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/utils"
)

// AddVehicle assigns a fresh id and inserts the draft into the catalog. All
// other fields are taken verbatim from the draft; field-level validation is
// the admin form's job.
func (s *DefaultInventoryService) AddVehicle(draft models.Vehicle) (*models.Vehicle, error) {
	draft.ID = uuid.New().String()
	if err := s.VehicleRepo.Create(&draft); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("vehicle added",
		zap.String("vehicleID", draft.ID),
		zap.String("licensePlate", draft.LicensePlate),
	)
	return &draft, nil
}

// UpdateVehicle merges allowed updates onto the existing record and returns
// the updated vehicle. It implements patch-style updates; the id itself is
// never patched.
func (s *DefaultInventoryService) UpdateVehicle(id string, updates map[string]interface{}) (*models.Vehicle, error) {
	existing, err := s.VehicleRepo.GetByID(id)
	if err != nil {
		return nil, &VehicleNotFoundError{ID: id}
	}

	if v, ok := updates["make"].(string); ok && v != "" {
		existing.Make = v
	}
	if v, ok := updates["model"].(string); ok && v != "" {
		existing.Model = v
	}
	if v, ok := asInt(updates["year"]); ok {
		existing.Year = v
	}
	if v, ok := updates["type"].(string); ok && v != "" {
		existing.Type = models.VehicleType(v)
	}
	if v, ok := asFloat(updates["pricePerDay"]); ok {
		existing.PricePerDay = v
	}
	if v, ok := updates["image"].(string); ok && v != "" {
		existing.Image = v
	}
	if v, ok := updates["status"].(string); ok && v != "" {
		existing.Status = models.VehicleStatus(v)
	}
	if v, ok := updates["location"].(string); ok && v != "" {
		existing.Location = v
	}
	if v, ok := updates["transmission"].(string); ok && v != "" {
		existing.Transmission = v
	}
	if v, ok := asInt(updates["seats"]); ok {
		existing.Seats = v
	}
	if v, ok := updates["fuelType"].(string); ok && v != "" {
		existing.FuelType = v
	}
	if v, ok := updates["licensePlate"].(string); ok && v != "" {
		existing.LicensePlate = v
	}
	// Free-text fields may be cleared.
	if v, ok := updates["description"].(string); ok {
		existing.Description = v
	}
	if v, ok := updates["rentedUntil"].(string); ok {
		existing.RentedUntil = v
	}

	if err := s.VehicleRepo.Update(existing); err != nil {
		return nil, &VehicleNotFoundError{ID: id}
	}
	return existing, nil
}

// DeleteVehicle removes the record unconditionally. A rented vehicle deletes
// anyway (the caller surfaces the stronger warning to the operator first),
// and ledger entries referencing the vehicle are left in place.
func (s *DefaultInventoryService) DeleteVehicle(id string) error {
	logger := utils.GetLogger()

	existing, err := s.VehicleRepo.GetByID(id)
	if err != nil {
		return &VehicleNotFoundError{ID: id}
	}
	if existing.Status == models.StatusRented {
		logger.Warn("deleting a vehicle that is currently rented",
			zap.String("vehicleID", id),
			zap.String("licensePlate", existing.LicensePlate),
		)
	}
	if err := s.VehicleRepo.Delete(id); err != nil {
		return &VehicleNotFoundError{ID: id}
	}
	logger.Info("vehicle deleted", zap.String("vehicleID", id))
	return nil
}

// noConstraint reports whether a filter value means "no constraint".
func noConstraint(v string) bool {
	return v == "" || v == "All"
}

// Search returns catalog entries matching the query in catalog order. Text
// is a case-insensitive substring match over make, model and license plate,
// conjoined with the exact-match filters.
func (s *DefaultInventoryService) Search(query models.InventoryQuery) ([]models.Vehicle, error) {
	catalog, err := s.VehicleRepo.GetAll()
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(query.Text)
	matches := make([]models.Vehicle, 0, len(catalog))
	for _, v := range catalog {
		if text != "" &&
			!strings.Contains(strings.ToLower(v.Make), text) &&
			!strings.Contains(strings.ToLower(v.Model), text) &&
			!strings.Contains(strings.ToLower(v.LicensePlate), text) {
			continue
		}
		if !noConstraint(query.Type) && string(v.Type) != query.Type {
			continue
		}
		if !noConstraint(query.Status) && string(v.Status) != query.Status {
			continue
		}
		if !noConstraint(query.Location) && v.Location != query.Location {
			continue
		}
		matches = append(matches, v)
	}
	return matches, nil
}

// FleetStats aggregates the dashboard counters from the catalog and ledger.
func (s *DefaultInventoryService) FleetStats() (*FleetStats, error) {
	catalog, err := s.VehicleRepo.GetAll()
	if err != nil {
		return nil, err
	}
	ledger, err := s.LedgerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &FleetStats{
		TotalCars:    len(catalog),
		StatusCounts: make(map[string]int),
	}
	for _, v := range catalog {
		stats.StatusCounts[string(v.Status)]++
		if v.Status == models.StatusMaintenance {
			stats.Maintenance++
		}
	}
	for _, r := range ledger {
		stats.TotalRevenue += r.TotalPrice
		if r.Status == models.ReservationConfirmed {
			stats.ActiveRents++
		}
	}
	return stats, nil
}

// ListReservations returns the full ledger for the admin view.
func (s *DefaultInventoryService) ListReservations() ([]models.Reservation, error) {
	return s.LedgerRepo.GetAll()
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
