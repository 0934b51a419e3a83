package entity

import "time"

// System field names stamped onto every record by the store. They are not
// declared in schemas and pass through validation untouched.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// TimestampFormat is the wire format for created_at and updated_at.
const TimestampFormat = time.RFC3339

// Record is one instance of an entity: a field-to-value map plus the system
// fields. The map is deliberately open; fields not present in the governing
// schema are carried through validation and storage unchanged, because
// several dashboard modules stash extra values on their records.
type Record map[string]any

// ID returns the record's id, or "" if unset.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// CreatedAt parses the created_at stamp. Returns the zero time when the
// field is absent or not a parseable timestamp or date.
func (r Record) CreatedAt() time.Time {
	return r.timeField(FieldCreatedAt)
}

// UpdatedAt parses the updated_at stamp, zero time when absent.
func (r Record) UpdatedAt() time.Time {
	return r.timeField(FieldUpdatedAt)
}

func (r Record) timeField(name string) time.Time {
	s, ok := r[name].(string)
	if !ok {
		return time.Time{}
	}
	if t, err := time.Parse(TimestampFormat, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// Clone returns a shallow copy of the record. Stores hand out clones so
// callers never hold live references into stored data.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with every key in partial overriding the
// existing value. Keys absent from partial are preserved.
func (r Record) Merge(partial Record) Record {
	out := r.Clone()
	for k, v := range partial {
		out[k] = v
	}
	return out
}
