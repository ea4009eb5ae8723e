package lastfm

import "fmt"

// ConstructionError reports a missing identity field when building an
// entity handle from a decoded record.
type ConstructionError struct {
	Entity string
	Field  string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing %s: required field %q is missing", e.Entity, e.Field)
}

// MappingError reports a feed record that cannot become a valid entity.
// It aborts the whole fetch; partial results are never returned.
type MappingError struct {
	Entity string
	Key    string
	Reason string
}

func (e *MappingError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("mapping %s record %q: %s", e.Entity, e.Key, e.Reason)
	}
	return fmt.Sprintf("mapping %s record: %s", e.Entity, e.Reason)
}

// UnsupportedError reports a relationship the upstream service does not
// provide for the entity type. No request is attempted.
type UnsupportedError struct {
	Entity   string
	Relation string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s of a %s is not supported by the service", e.Relation, e.Entity)
}
