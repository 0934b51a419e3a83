package entity

import (
	"fmt"
	"strings"
)

// FieldError collects the validation messages for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// FieldErrors is the result of validating a candidate record: one entry per
// offending field, in schema declaration order. An empty list means the
// candidate passed.
type FieldErrors []FieldError

// Error joins all messages so FieldErrors can travel as an ordinary error.
func (e FieldErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages flattens all per-field messages in order.
func (e FieldErrors) Messages() []string {
	var out []string
	for _, fe := range e {
		out = append(out, fe.Messages...)
	}
	return out
}

// ByField returns the messages recorded for one field, nil if none.
func (e FieldErrors) ByField(name string) []string {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Messages
		}
	}
	return nil
}

// Validate checks a candidate record against the schema. Every field declared
// required must be present and non-empty; all failures are collected, not
// just the first. Fields present in the candidate but absent from the schema
// are intentionally not errors: the schema is permissive, not closed, and
// unknown fields pass through untouched. Type coercion is the field mapper's
// job and never raises errors here.
func Validate(s Schema, candidate Record) FieldErrors {
	var errs FieldErrors
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if isEmpty(candidate[f.Name]) {
			errs = append(errs, FieldError{
				Field:    f.Name,
				Messages: []string{fmt.Sprintf("Required field '%s' is missing", f.Name)},
			})
		}
	}
	return errs
}

// isEmpty reports whether a value counts as missing for required-field
// purposes: nil, the empty string, or a zero-length collection.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
