package domain

import "fmt"

// RelationType compatibility class between two spirit types
type RelationType string

const (
	// RelationAllow types may sit next to each other without restrictions
	RelationAllow RelationType = "allow"

	// RelationSeparation types must not occupy adjacent seats
	RelationSeparation RelationType = "separation"

	// RelationForbidden types must not share a table at all
	RelationForbidden RelationType = "forbidden"
)

// ParseRelationType validates a relation value coming from the API
func ParseRelationType(s string) (RelationType, error) {
	switch RelationType(s) {
	case RelationAllow, RelationSeparation, RelationForbidden:
		return RelationType(s), nil
	default:
		return "", fmt.Errorf("unknown relation type %q", s)
	}
}

// TypeRelation is a configured compatibility rule between two spirit types.
// The pair is stored directed but queried symmetrically: (A,B) and (B,A)
// describe the same rule, whichever direction was configured first wins
type TypeRelation struct {
	ID           int64
	SourceTypeID int64
	TargetTypeID int64
	Relation     RelationType
}
