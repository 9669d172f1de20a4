package rental

import (
	"time"

	"gashadrift/models"
)

// RangesOverlap reports whether the half-open ranges [s1,e1) and [s2,e2)
// intersect. A range ending exactly where the other starts does not
// conflict, which is what allows back-to-back bookings on the boundary day.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ComputeAvailable returns the subset of the catalog free to book for the
// query window, preserving catalog order. It is a pure function over its
// inputs and safe to re-run on every query change.
//
// Eligibility, in order: vehicles whose status is neither available nor
// reserved are excluded outright (maintenance and rented never book,
// regardless of dates); the rest are excluded only if a non-cancelled ledger
// entry for them overlaps the query window. The query's location is display
// information and never narrows the result.
func ComputeAvailable(catalog []models.Vehicle, ledger []models.Reservation, query models.SearchParams) ([]models.Vehicle, error) {
	queryStart, err := ParseDate(query.StartDate)
	if err != nil {
		return nil, err
	}
	queryEnd, err := ParseDate(query.EndDate)
	if err != nil {
		return nil, err
	}

	available := make([]models.Vehicle, 0, len(catalog))
	for _, vehicle := range catalog {
		if vehicle.Status != models.StatusAvailable && vehicle.Status != models.StatusReserved {
			continue
		}

		conflict := false
		for _, res := range ledger {
			if res.VehicleID != vehicle.ID || res.Status == models.ReservationCancelled {
				continue
			}
			resStart, err := ParseDate(res.StartDate)
			if err != nil {
				return nil, err
			}
			resEnd, err := ParseDate(res.EndDate)
			if err != nil {
				return nil, err
			}
			if RangesOverlap(queryStart, queryEnd, resStart, resEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, vehicle)
		}
	}
	return available, nil
}

// SearchAvailable loads the current catalog and ledger snapshots and runs
// the availability filter over them.
func (s *DefaultBookingService) SearchAvailable(query models.SearchParams) ([]models.Vehicle, error) {
	catalog, err := s.VehicleRepo.GetAll()
	if err != nil {
		return nil, err
	}
	ledger, err := s.LedgerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return ComputeAvailable(catalog, ledger, query)
}
