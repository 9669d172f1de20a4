package models

// VehicleStatus is the coarse admin-set state of a fleet vehicle. It is a
// hint only: fine-grained bookability is always derived from the reservation
// ledger, never from this flag alone.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "available"
	StatusRented      VehicleStatus = "rented"
	StatusMaintenance VehicleStatus = "maintenance"
	StatusReserved    VehicleStatus = "reserved"
)

// VehicleType is the commercial category of a vehicle.
type VehicleType string

const (
	TypeSedan    VehicleType = "Sedan"
	TypeSUV      VehicleType = "SUV"
	TypeLuxury   VehicleType = "Luxury"
	TypeTruck    VehicleType = "Truck"
	TypeElectric VehicleType = "Electric"
)

// Locations are the fixed pickup sites the fleet operates from.
var Locations = []string{
	"Addis Ababa Downtown",
	"Bole International Airport",
	"Lancha Branch",
	"Gerji Office",
	"Kechene",
}

// Vehicle represents a single fleet vehicle record. ID is immutable once
// created. Image is an opaque payload (URL or data URI) and is never decoded.
// LicensePlate is unique per fleet by convention but not enforced.
type Vehicle struct {
	ID           string        `json:"id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Type         VehicleType   `json:"type"`
	PricePerDay  float64       `json:"pricePerDay"`
	Image        string        `json:"image"`
	Status       VehicleStatus `json:"status"`
	Location     string        `json:"location"`
	Transmission string        `json:"transmission"`
	Seats        int           `json:"seats"`
	FuelType     string        `json:"fuelType"`
	LicensePlate string        `json:"licensePlate"`
	Description  string        `json:"description,omitempty"`
	RentedUntil  string        `json:"rentedUntil,omitempty"`
}
