package domain

import "time"

// BanquetTable represents a banquet table and its seats
type BanquetTable struct {
	ID        int64
	Capacity  int
	State     bool // false = table taken out of service
	Seats     []BanquetSeat
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BanquetSeat is a single seat at a table
// Seat numbers are 1-based and unique within the table; they define the
// circular neighbor order used by the availability rules
type BanquetSeat struct {
	ID         int64
	TableID    int64
	SeatNumber int
}
