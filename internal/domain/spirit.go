package domain

// Spirit is a venue guest. Read-only here: the availability engine only
// needs the guest's type for compatibility lookups
type Spirit struct {
	ID     int64
	Name   string
	TypeID int64
	Active bool
}

// SpiritType classifies spirits; compatibility rules are defined
// between pairs of types
type SpiritType struct {
	ID          int64
	Name        string
	Kanji       string
	DangerScore int
}
