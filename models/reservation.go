package models

import "time"

// ReservationStatus is the lifecycle state of a booking. The booking
// workflow currently only ever produces "confirmed"; cancelled entries are
// excluded from conflict checks, and pending/completed exist for future
// review flows.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a single ledger entry for a booked vehicle. VehicleID is a
// soft reference: it named an existing vehicle at booking time, but deleting
// that vehicle later leaves the entry orphaned. TotalPrice is fixed at
// booking time and is not recomputed if the vehicle's rate changes.
type Reservation struct {
	ID                string            `json:"id"`
	VehicleID         string            `json:"vehicleId"`
	CustomerID        string            `json:"customerId"`
	StartDate         string            `json:"startDate"` // "YYYY-MM-DD"
	EndDate           string            `json:"endDate"`   // "YYYY-MM-DD"
	TotalPrice        float64           `json:"totalPrice"`
	Status            ReservationStatus `json:"status"`
	PickupLocation    string            `json:"pickupLocation"`
	TransactionID     string            `json:"transactionId,omitempty"`
	PaymentScreenshot string            `json:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// VerificationPayload is the opaque proof-of-payment bundle a customer
// submits with a booking. Only the transaction reference is retained on the
// ledger entry; the remaining fields are display-only and never validated.
type VerificationPayload struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	KebeleID      string `json:"kebeleId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
	Screenshot    string `json:"screenshot,omitempty"`
}
