package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reservationRepo "gashadrift/database/repository/reservation"
	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/models"
)

func newTestService(t *testing.T, vehicles ...models.Vehicle) (*DefaultInventoryService, *reservationRepo.MemoryReservationRepo) {
	t.Helper()
	ledger := reservationRepo.NewMemoryReservationRepo()
	svc := &DefaultInventoryService{
		VehicleRepo: vehicleRepo.NewSeededVehicleRepo(vehicles),
		LedgerRepo:  ledger,
	}
	return svc, ledger
}

func elantra() models.Vehicle {
	return models.Vehicle{
		ID:           "v1",
		Make:         "Hyundai",
		Model:        "Elantra",
		Year:         2022,
		Type:         models.TypeSedan,
		PricePerDay:  80,
		Status:       models.StatusAvailable,
		Location:     "Gerji Office",
		Transmission: "Automatic",
		Seats:        5,
		FuelType:     "Petrol",
		LicensePlate: "AA-2-44332",
	}
}

func prado() models.Vehicle {
	return models.Vehicle{
		ID:           "v2",
		Make:         "Toyota",
		Model:        "Land Cruiser Prado",
		Year:         2022,
		Type:         models.TypeSUV,
		PricePerDay:  150,
		Status:       models.StatusMaintenance,
		Location:     "Addis Ababa Downtown",
		LicensePlate: "AA-2-56789",
	}
}

func TestAddVehicleAssignsFreshID(t *testing.T) {
	svc, _ := newTestService(t)

	draft := elantra()
	draft.ID = "should-be-replaced"
	added, err := svc.AddVehicle(draft)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.NotEqual(t, "should-be-replaced", added.ID)
	assert.Equal(t, "Hyundai", added.Make)
	assert.Equal(t, 80.0, added.PricePerDay)

	stored, err := svc.VehicleRepo.GetByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, *added, *stored)
}

func TestUpdateVehicleMergesPatch(t *testing.T) {
	svc, _ := newTestService(t, elantra())

	updated, err := svc.UpdateVehicle("v1", map[string]interface{}{
		"pricePerDay": 95.0,
		"status":      "maintenance",
		"description": "brake service due",
	})
	require.NoError(t, err)
	assert.Equal(t, 95.0, updated.PricePerDay)
	assert.Equal(t, models.StatusMaintenance, updated.Status)
	assert.Equal(t, "brake service due", updated.Description)
	// Untouched fields survive the merge.
	assert.Equal(t, "Hyundai", updated.Make)
	assert.Equal(t, "AA-2-44332", updated.LicensePlate)
	// The id is never patched.
	assert.Equal(t, "v1", updated.ID)
}

func TestUpdateVehicleAcceptsJSONNumbers(t *testing.T) {
	svc, _ := newTestService(t, elantra())

	// JSON decoding hands numbers over as float64.
	updated, err := svc.UpdateVehicle("v1", map[string]interface{}{
		"year":  float64(2024),
		"seats": float64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 2024, updated.Year)
	assert.Equal(t, 7, updated.Seats)
}

func TestUpdateVehicleClearsFreeTextFields(t *testing.T) {
	v := elantra()
	v.Description = "old note"
	v.RentedUntil = "2024-06-30"
	svc, _ := newTestService(t, v)

	updated, err := svc.UpdateVehicle("v1", map[string]interface{}{
		"description": "",
		"rentedUntil": "",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.RentedUntil)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateVehicle("ghost", map[string]interface{}{"make": "Lada"})
	var notFound *VehicleNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ID)
}

func TestDeleteVehicle(t *testing.T) {
	svc, _ := newTestService(t, elantra())

	require.NoError(t, svc.DeleteVehicle("v1"))
	_, err := svc.VehicleRepo.GetByID("v1")
	assert.Error(t, err)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteVehicle("ghost")
	var notFound *VehicleNotFoundError
	require.ErrorAs(t, err, &notFound)
}

// A rented vehicle deletes anyway; the stronger operator warning lives in
// the caller, not here.
func TestDeleteRentedVehicleProceeds(t *testing.T) {
	v := elantra()
	v.Status = models.StatusRented
	svc, _ := newTestService(t, v)

	require.NoError(t, svc.DeleteVehicle("v1"))
}

// Deleting a booked vehicle leaves its reservations in the ledger.
func TestDeleteLeavesOrphanedReservations(t *testing.T) {
	svc, ledger := newTestService(t, elantra())
	require.NoError(t, ledger.Create(&models.Reservation{
		ID:        "r1",
		VehicleID: "v1",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		Status:    models.ReservationConfirmed,
	}))

	require.NoError(t, svc.DeleteVehicle("v1"))

	entries, err := ledger.GetAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "v1", entries[0].VehicleID)
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t, elantra(), prado())

	tests := []struct {
		name  string
		query models.InventoryQuery
		want  []string
	}{
		{"no constraints returns all", models.InventoryQuery{}, []string{"v1", "v2"}},
		{"All sentinels mean no constraint", models.InventoryQuery{Type: "All", Status: "All", Location: "All"}, []string{"v1", "v2"}},
		{"text matches make case-insensitively", models.InventoryQuery{Text: "hyundai"}, []string{"v1"}},
		{"text matches model substring", models.InventoryQuery{Text: "cruiser"}, []string{"v2"}},
		{"text matches license plate", models.InventoryQuery{Text: "44332"}, []string{"v1"}},
		{"type filter", models.InventoryQuery{Type: "SUV"}, []string{"v2"}},
		{"status filter", models.InventoryQuery{Status: "maintenance"}, []string{"v2"}},
		{"location filter", models.InventoryQuery{Location: "Gerji Office"}, []string{"v1"}},
		{"filters conjoin", models.InventoryQuery{Text: "toyota", Status: "available"}, nil},
		{"no match", models.InventoryQuery{Text: "ferrari"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(tc.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			if tc.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tc.want, ids)
			}
		})
	}
}

func TestFleetStats(t *testing.T) {
	svc, ledger := newTestService(t, elantra(), prado())
	require.NoError(t, ledger.Create(&models.Reservation{
		ID: "r1", VehicleID: "v1", TotalPrice: 200, Status: models.ReservationConfirmed,
	}))
	require.NoError(t, ledger.Create(&models.Reservation{
		ID: "r2", VehicleID: "v1", TotalPrice: 150, Status: models.ReservationCancelled,
	}))

	stats, err := svc.FleetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCars)
	assert.Equal(t, 1, stats.ActiveRents)
	assert.Equal(t, 1, stats.Maintenance)
	assert.Equal(t, 350.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.StatusCounts["available"])
	assert.Equal(t, 1, stats.StatusCounts["maintenance"])
}
