package siampay

import (
	"fmt"
	"strings"
)

// reservedPrefix marks field names that belong to a record's own
// bookkeeping state rather than the tracked field mapping.
const reservedPrefix = "_"

// Record is the generic representation of a decoded API object.
//
// A Record holds a flat mapping of field name to value and tracks which
// fields have been written locally since the last Load. The dirty subset,
// exposed by Changes, is what a binding's Update sends as a partial update.
// Concrete resource kinds (Charge, Customer, ...) embed Record and add no
// state of their own.
//
// A Record is not safe for concurrent mutation from multiple goroutines
// without external synchronization.
type Record struct {
	attributes map[string]any
	changes    map[string]struct{}
	meta       map[string]any
}

// Resource is implemented by every decoded API object, concrete kinds and
// the generic Record alike.
type Resource interface {
	Load(data map[string]any) *Record
	Get(name string) (any, error)
	Set(name string, value any)
	Changes() map[string]any
	Kind() string
	ID() string
}

// Load replaces the record's entire field mapping with a shallow copy of
// data and clears the dirty set. It returns the record to allow chaining.
func (r *Record) Load(data map[string]any) *Record {
	attributes := make(map[string]any, len(data))
	for key, value := range data {
		attributes[key] = value
	}

	r.attributes = attributes
	r.changes = make(map[string]struct{})

	return r
}

// Get returns the value stored under name. Object-valued fields are
// converted through the object factory on every read; no conversion result
// is cached, so repeated reads of the same field produce independent
// records. List-valued fields are returned raw; only Collection converts
// list elements. A missing field yields an error wrapping ErrFieldNotFound.
func (r *Record) Get(name string) (any, error) {
	value, ok := r.attributes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	if nested, ok := value.(map[string]any); ok {
		return Materialize(nested), nil
	}

	return value, nil
}

// Set stores value under name and marks the field dirty. Names carrying
// the reserved "_" prefix are routed to the record's bookkeeping state:
// they are never part of the tracked field set and never appear in Changes.
func (r *Record) Set(name string, value any) {
	if strings.HasPrefix(name, reservedPrefix) {
		if r.meta == nil {
			r.meta = make(map[string]any)
		}

		r.meta[name] = value

		return
	}

	if r.attributes == nil {
		r.attributes = make(map[string]any)
	}

	if r.changes == nil {
		r.changes = make(map[string]struct{})
	}

	r.attributes[name] = value
	r.changes[name] = struct{}{}
}

// Changes returns the dirty fields as a mapping from name to the current
// stored raw value.
func (r *Record) Changes() map[string]any {
	changed := make(map[string]any, len(r.changes))
	for name := range r.changes {
		changed[name] = r.attributes[name]
	}

	return changed
}

// Fields returns a shallow copy of the record's raw field mapping, dirty
// and clean fields alike. Mutating the copy does not affect the record.
func (r *Record) Fields() map[string]any {
	fields := make(map[string]any, len(r.attributes))
	for name, value := range r.attributes {
		fields[name] = value
	}

	return fields
}

// Kind returns the record's object discriminator, or "" when absent.
func (r *Record) Kind() string {
	return r.GetString("object")
}

// ID returns the record's identifier field, or "" when absent.
func (r *Record) ID() string {
	return r.GetString("id")
}

// Destroyed reports whether the record reflects a server-side deletion.
// It reads the loaded "deleted" field and performs no network call.
func (r *Record) Destroyed() bool {
	return r.GetBool("deleted")
}

// GetString returns the named field as a string, or "" when the field is
// absent or not a string.
func (r *Record) GetString(name string) string {
	value, _ := r.attributes[name].(string)

	return value
}

// GetBool returns the named field as a bool, defaulting to false.
func (r *Record) GetBool(name string) bool {
	value, _ := r.attributes[name].(bool)

	return value
}

// GetInt64 returns the named field as an int64. JSON numbers decode as
// float64, so both representations are accepted.
func (r *Record) GetInt64(name string) int64 {
	switch value := r.attributes[name].(type) {
	case float64:
		return int64(value)
	case int64:
		return value
	case int:
		return int64(value)
	default:
		return 0
	}
}

// String returns a diagnostic representation with the record's kind and,
// when present, its identifier.
func (r *Record) String() string {
	kind := r.Kind()
	if kind == "" {
		kind = "record"
	}

	if id := r.ID(); id != "" {
		return fmt.Sprintf("<%s id=%q>", kind, id)
	}

	return fmt.Sprintf("<%s>", kind)
}
