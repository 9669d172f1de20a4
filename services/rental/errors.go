package rental

import "fmt"

// VehicleNotFoundError signals that a rental operation referenced a vehicle
// id with no catalog record.
type VehicleNotFoundError struct {
	ID string
}

func (e *VehicleNotFoundError) Error() string {
	return fmt.Sprintf("vehicle %s not found", e.ID)
}

// BookingError wraps a failure in the booking workflow itself.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(msg string) error {
	return &BookingError{
		Code:    "bookingError",
		Message: msg,
	}
}
