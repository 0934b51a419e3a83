package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// Compile-time interface check.
var _ entity.Store = (*Store)(nil)

// Store implements entity.Store for one entity type. Records live as rows in
// the shared records table; insertion order is the rowid order.
type Store struct {
	backend *Backend
	entity  string
	schema  entity.Schema
}

// GetAll returns every record in insertion order.
func (s *Store) GetAll() ([]entity.Record, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, ErrDetached
	}

	rows, err := s.backend.db.Query(
		"SELECT fields FROM records WHERE entity = ? ORDER BY rowid",
		s.entity,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.entity, err)
	}
	defer rows.Close()

	var out []entity.Record
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		rec, err := hydrate(doc)
		if err != nil {
			return nil, fmt.Errorf("hydrating %s record: %w", s.entity, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID returns the record with the given id, or entity.ErrNotFound.
func (s *Store) GetByID(id string) (entity.Record, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, ErrDetached
	}
	if id == "" {
		return nil, entity.ErrInvalidID
	}

	var doc string
	err := s.backend.db.QueryRow(
		"SELECT fields FROM records WHERE entity = ? AND record_id = ?",
		s.entity, id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", s.entity, id, err)
	}
	return hydrate(doc)
}

// Create validates data and inserts it. When data carries no id, the first
// free "{prefix}-{NNN}" slot from 1 is assigned; numbers freed by deletion
// are reused. A caller-supplied id that is already in use is rejected with
// entity.ErrDuplicateID. created_at is stamped if absent.
func (s *Store) Create(data entity.Record) (entity.Record, error) {
	if errs := entity.Validate(s.schema, data); len(errs) > 0 {
		return nil, errs
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return nil, ErrDetached
	}

	rec := data.Clone()
	if rec.ID() == "" {
		id, err := s.nextID()
		if err != nil {
			return nil, err
		}
		rec[entity.FieldID] = id
	} else {
		var n int
		err := s.backend.db.QueryRow(
			"SELECT COUNT(*) FROM records WHERE entity = ? AND record_id = ?",
			s.entity, rec.ID(),
		).Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("checking %s %s: %w", s.entity, rec.ID(), err)
		}
		if n > 0 {
			return nil, fmt.Errorf("%s: %w", rec.ID(), entity.ErrDuplicateID)
		}
	}
	if _, ok := rec[entity.FieldCreatedAt]; !ok {
		rec[entity.FieldCreatedAt] = time.Now().Format(entity.TimestampFormat)
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", s.entity, err)
	}
	_, err = s.backend.db.Exec(
		"INSERT INTO records (entity, record_id, created_at, updated_at, fields) VALUES (?, ?, ?, ?, ?)",
		s.entity, rec.ID(), stringField(rec, entity.FieldCreatedAt), stringField(rec, entity.FieldUpdatedAt), string(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting %s %s: %w", s.entity, rec.ID(), err)
	}
	return rec, nil
}

// Update shallow-merges partial over the stored record, stamps updated_at,
// and revalidates before writing. The row is untouched on validation failure.
func (s *Store) Update(id string, partial entity.Record) (entity.Record, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return nil, ErrDetached
	}
	if id == "" {
		return nil, entity.ErrInvalidID
	}

	var doc string
	err := s.backend.db.QueryRow(
		"SELECT fields FROM records WHERE entity = ? AND record_id = ?",
		s.entity, id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", s.entity, id, err)
	}

	current, err := hydrate(doc)
	if err != nil {
		return nil, err
	}
	merged := current.Merge(partial)
	merged[entity.FieldUpdatedAt] = time.Now().Format(entity.TimestampFormat)
	if errs := entity.Validate(s.schema, merged); len(errs) > 0 {
		return nil, errs
	}

	encoded, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", s.entity, err)
	}
	_, err = s.backend.db.Exec(
		"UPDATE records SET created_at = ?, updated_at = ?, fields = ? WHERE entity = ? AND record_id = ?",
		stringField(merged, entity.FieldCreatedAt), stringField(merged, entity.FieldUpdatedAt), string(encoded), s.entity, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", s.entity, id, err)
	}
	return merged, nil
}

// Delete removes the record with the given id. Deleting a missing id is an
// idempotent no-op reported as false.
func (s *Store) Delete(id string) (bool, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if !s.backend.attached {
		return false, ErrDetached
	}

	res, err := s.backend.db.Exec(
		"DELETE FROM records WHERE entity = ? AND record_id = ?",
		s.entity, id,
	)
	if err != nil {
		return false, fmt.Errorf("deleting %s %s: %w", s.entity, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return 0, ErrDetached
	}

	var n int
	err := s.backend.db.QueryRow(
		"SELECT COUNT(*) FROM records WHERE entity = ?", s.entity,
	).Scan(&n)
	return n, err
}

// Recent returns up to n records ordered newest created_at first. Timestamps
// are stored in RFC 3339 form so the lexical order matches time order.
func (s *Store) Recent(n int) ([]entity.Record, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	if !s.backend.attached {
		return nil, ErrDetached
	}

	rows, err := s.backend.db.Query(
		"SELECT fields FROM records WHERE entity = ? ORDER BY created_at DESC LIMIT ?",
		s.entity, n,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent %s: %w", s.entity, err)
	}
	defer rows.Close()

	var out []entity.Record
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		rec, err := hydrate(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// nextID scans the used ids and probes for the first free "{prefix}-{NNN}"
// starting at 1, so numbers freed by deletion are reused. The caller must
// hold the backend write lock.
func (s *Store) nextID() (string, error) {
	rows, err := s.backend.db.Query(
		"SELECT record_id FROM records WHERE entity = ?", s.entity,
	)
	if err != nil {
		return "", fmt.Errorf("scanning %s ids: %w", s.entity, err)
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		used[id] = true
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%03d", s.schema.IDPrefix, n)
		if !used[candidate] {
			return candidate, nil
		}
	}
}

// hydrate decodes a stored JSON document back into a record.
func hydrate(doc string) (entity.Record, error) {
	var rec entity.Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func stringField(rec entity.Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}
