package inventory

import "fmt"

// VehicleNotFoundError signals that an update or delete named a vehicle id
// with no catalog record. Callers should surface this distinctly rather
// than quietly no-opping.
type VehicleNotFoundError struct {
	ID string
}

func (e *VehicleNotFoundError) Error() string {
	return fmt.Sprintf("vehicle %s not found", e.ID)
}
