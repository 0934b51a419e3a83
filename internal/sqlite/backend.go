// Package sqlite implements the persistent entity store backend. All entity
// types share one records table keyed by (entity, record_id); record fields
// travel as a JSON document so schemas can evolve without migrations.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the database file created under the data directory.
const DBFileName = "sitedesk.db"

var (
	// ErrAlreadyAttached is returned by Attach on an attached backend.
	ErrAlreadyAttached = errors.New("backend already attached")
	// ErrDetached is returned when operating on a detached backend.
	ErrDetached = errors.New("backend detached")
	// ErrEmptyDataDir is returned when the config names no data directory.
	ErrEmptyDataDir = errors.New("data directory not set")
)

// Config carries the backend settings.
type Config struct {
	// DataDir is the directory holding the database file. Created if absent.
	DataDir string
}

// Validate checks the config for required fields.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrEmptyDataDir
	}
	return nil
}

// Backend owns the SQLite connection and hands out per-entity stores.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// NewBackend creates a detached backend. Call Attach before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database under config.DataDir and applies the
// schema. Returns ErrAlreadyAttached on a second call.
func (b *Backend) Attach(config Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, DBFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach every store operation
// returns ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Store returns the store for one entity type, governed by the given schema.
func (b *Backend) Store(entityName string, schema entity.Schema) entity.Store {
	return &Store{backend: b, entity: entityName, schema: schema}
}
