package booking

import "github.com/google/uuid"

// FindConflict returns the first booking that holds an overlapping slot at the same venue on the same day.
// Cancelled bookings never conflict.
func FindConflict(venueID uuid.UUID, date EventDate, candidate Interval, existing []*Booking) *Booking {
	for _, b := range existing {
		if b == nil || !b.status.HoldsSlot() {
			continue
		}
		if b.venueID != venueID || b.eventDate != date {
			continue
		}
		if b.interval.Overlaps(candidate) {
			return b
		}
	}
	return nil
}
