package domain

import "time"

// Reservation is read-only for this service: it is created and mutated
// elsewhere, the availability engine only checks interval overlap
type Reservation struct {
	ID         int64
	AccountID  string
	SeatID     *int64 // nil = non-seat service reservation
	StartTime  time.Time
	EndTime    time.Time
	IsRedeemed bool
	IsRated    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps reports whether the reservation intersects the half-open window
// [windowStart, windowEnd). Touching intervals do not overlap: a reservation
// ending exactly at windowStart, or starting exactly at windowEnd, is free
func (r *Reservation) Overlaps(windowStart, windowEnd time.Time) bool {
	return r.StartTime.Before(windowEnd) && r.EndTime.After(windowStart)
}

// SeatOccupancy is the resolved occupant of a seat within a queried window.
// Spirit and Type are nil when the reservation's account cannot be traced
// back to a spirit
type SeatOccupancy struct {
	ReservationID int64
	Spirit        *Spirit
	Type          *SpiritType
}
