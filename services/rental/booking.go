package rental

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gashadrift/models"
	"gashadrift/utils"
)

// QuoteReservation prices the given vehicle over the requested window
// without touching the ledger.
func (s *DefaultBookingService) QuoteReservation(vehicleID, startDate, endDate string) (*Quote, error) {
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, &VehicleNotFoundError{ID: vehicleID}
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	quote := PriceQuote(*vehicle, start, end)
	return &quote, nil
}

// CreateReservation confirms a booking for the selected vehicle and appends
// it to the ledger. The verification payload is accepted opaquely; only the
// transaction reference is retained on the entry. The reservation is
// confirmed immediately; there is no pending review step, despite the
// user-facing copy about manual verification.
func (s *DefaultBookingService) CreateReservation(vehicleID, startDate, endDate, pickupLocation string, verification models.VerificationPayload) (*models.Reservation, error) {
	logger := utils.GetLogger()

	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, &VehicleNotFoundError{ID: vehicleID}
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}

	// Simulated payment-processing window.
	if s.ConfirmDelay > 0 {
		time.Sleep(s.ConfirmDelay)
	}

	quote := PriceQuote(*vehicle, start, end)
	reservation := &models.Reservation{
		ID:             uuid.New().String(),
		VehicleID:      vehicle.ID,
		CustomerID:     newCustomerID(),
		StartDate:      startDate,
		EndDate:        endDate,
		TotalPrice:     quote.TotalPrice,
		Status:         models.ReservationConfirmed,
		PickupLocation: pickupLocation,
		TransactionID:  verification.TransactionID,
		CreatedAt:      time.Now(),
	}

	if err := s.LedgerRepo.Create(reservation); err != nil {
		return nil, fmt.Errorf("failed to record reservation: %w", err)
	}

	logger.Info("booking confirmed",
		zap.String("reservationID", reservation.ID),
		zap.String("vehicleID", vehicle.ID),
		zap.String("customerID", reservation.CustomerID),
		zap.Int("days", quote.Days),
		zap.Float64("totalPrice", quote.TotalPrice),
	)
	return reservation, nil
}

// newCustomerID mints the opaque per-booking customer handle. There is no
// authenticated account to link it to.
func newCustomerID() string {
	return "CUST-" + uuid.New().String()[:8]
}
