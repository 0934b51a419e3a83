// Package memstore implements the in-memory entity store: an ordered record
// sequence per entity type with schema validation and prefix-numbered ID
// assignment. It is the session-scoped default backend and the fallback when
// the persistence collaborator is unavailable.
package memstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// Store holds the records of one entity type in insertion order.
// It is not safe for concurrent use; a store belongs to a single session.
type Store struct {
	schema  entity.Schema
	records []entity.Record
}

// New returns an empty store governed by the given schema.
func New(schema entity.Schema) *Store {
	return &Store{schema: schema}
}

// GetAll returns copies of every record in insertion order.
func (s *Store) GetAll() ([]entity.Record, error) {
	out := make([]entity.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out, nil
}

// GetByID returns a copy of the record with the given id, or ErrNotFound.
func (s *Store) GetByID(id string) (entity.Record, error) {
	if id == "" {
		return nil, entity.ErrInvalidID
	}
	for _, r := range s.records {
		if r.ID() == id {
			return r.Clone(), nil
		}
	}
	return nil, entity.ErrNotFound
}

// Create validates data against the schema and appends it. When data carries
// no id, the first free "{prefix}-{NNN}" slot from 1 is assigned; numbers
// freed by deletion are reused. A caller-supplied id that is already in use
// is rejected with ErrDuplicateID. created_at is stamped if absent. On
// validation failure the FieldErrors are returned and nothing is appended.
func (s *Store) Create(data entity.Record) (entity.Record, error) {
	if errs := entity.Validate(s.schema, data); len(errs) > 0 {
		return nil, errs
	}
	rec := data.Clone()
	if rec.ID() == "" {
		rec[entity.FieldID] = s.nextID()
	} else {
		for _, r := range s.records {
			if r.ID() == rec.ID() {
				return nil, fmt.Errorf("%s: %w", rec.ID(), entity.ErrDuplicateID)
			}
		}
	}
	if _, ok := rec[entity.FieldCreatedAt]; !ok {
		rec[entity.FieldCreatedAt] = time.Now().Format(entity.TimestampFormat)
	}
	s.records = append(s.records, rec)
	return rec.Clone(), nil
}

// Update shallow-merges partial over the stored record, stamps updated_at,
// and revalidates before committing in place. The stored record is untouched
// on validation failure. Returns ErrNotFound for an unknown id.
func (s *Store) Update(id string, partial entity.Record) (entity.Record, error) {
	if id == "" {
		return nil, entity.ErrInvalidID
	}
	for i, r := range s.records {
		if r.ID() != id {
			continue
		}
		merged := r.Merge(partial)
		merged[entity.FieldUpdatedAt] = time.Now().Format(entity.TimestampFormat)
		if errs := entity.Validate(s.schema, merged); len(errs) > 0 {
			return nil, errs
		}
		s.records[i] = merged
		return merged.Clone(), nil
	}
	return nil, entity.ErrNotFound
}

// Delete removes the first record with the given id. Deleting a missing id
// is an idempotent no-op reported as false.
func (s *Store) Delete(id string) (bool, error) {
	for i, r := range s.records {
		if r.ID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	return len(s.records), nil
}

// Recent returns up to n records ordered newest created_at first.
func (s *Store) Recent(n int) ([]entity.Record, error) {
	all, _ := s.GetAll()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// nextID scans existing ids for the first free "{prefix}-{NNN}" starting at
// 1. Linear probing is O(n) per create, which is fine at dashboard scale
// (tens to low thousands of records) and keeps freed numbers reusable.
func (s *Store) nextID() string {
	used := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		used[r.ID()] = true
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%03d", s.schema.IDPrefix, n)
		if !used[candidate] {
			return candidate
		}
	}
}
