package domain

import "time"

// Default values
const (
	// DefaultTableCapacity seats auto-created for a new table when the
	// request does not specify a capacity
	DefaultTableCapacity = 6

	// SlotDuration fixed reservation window; every slot and every direct
	// availability query covers exactly one hour
	SlotDuration = time.Hour
)

// Business validation constants
const (
	MinTableCapacity = 1
	MaxTableCapacity = 24
)

// Time format constants
const (
	DateFormat      = "2006-01-02"       // YYYY-MM-DD
	SlotLabelFormat = "03:04 PM"         // hh:mm AM/PM, e.g. "09:00 AM"
	venueUTCOffset  = -5 * 60 * 60       // фиксированный часовой пояс площадки
)

// TimeSlots фиксированная дневная сетка слотов в порядке выдачи
// Каждый слот подразумевает окно в один час
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
	"07:00 PM",
	"08:00 PM",
	"09:00 PM",
}

var venueLocation = time.FixedZone("UTC-5", venueUTCOffset)

// VenueLocation returns the venue's fixed local time zone (UTC-5),
// independent of the server's own zone
func VenueLocation() *time.Location {
	return venueLocation
}
