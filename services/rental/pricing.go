package rental

import (
	"fmt"
	"math"
	"time"

	"gashadrift/models"
)

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in the API wire format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Quote is the priced result of a rental window against a vehicle.
type Quote struct {
	Days       int     `json:"days"`
	TotalPrice float64 `json:"totalPrice"`
}

// RentalDays returns the billable day count for a rental window. Partial
// days round up in the customer's favour (a 36-hour window bills as 2 days),
// and the count never drops below one, so same-day and inverted windows
// still bill a minimum of one day.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// PriceQuote computes the quote for renting the given vehicle over
// [start, end). No discounts, taxes or surcharges apply.
func PriceQuote(vehicle models.Vehicle, start, end time.Time) Quote {
	days := RentalDays(start, end)
	return Quote{
		Days:       days,
		TotalPrice: float64(days) * vehicle.PricePerDay,
	}
}
