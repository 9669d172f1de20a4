package rental

import (
	"time"

	reservationRepo "gashadrift/database/repository/reservation"
	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/models"
)

// BookingService defines the interface for the customer rental workflow:
// searching the fleet for a date window, quoting a rental, and confirming a
// reservation.
type BookingService interface {
	SearchAvailable(query models.SearchParams) ([]models.Vehicle, error)
	QuoteReservation(vehicleID, startDate, endDate string) (*Quote, error)
	CreateReservation(vehicleID, startDate, endDate, pickupLocation string, verification models.VerificationPayload) (*models.Reservation, error)
}

// DefaultBookingService implements BookingService over the in-memory catalog
// and ledger. ConfirmDelay simulates the manual payment-processing window
// before a confirmation resolves; tests set it to zero.
type DefaultBookingService struct {
	VehicleRepo  vehicleRepo.VehicleRepository
	LedgerRepo   reservationRepo.ReservationRepository
	ConfirmDelay time.Duration
}
