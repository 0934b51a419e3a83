// Package controller runs the per-session interaction loop for one entity
// type: list, view, edit, create, and delete, with search and filter state,
// a result cache, and one status message per operation. A controller is
// session-scoped and not safe for concurrent use.
package controller

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitedesk/sitedesk/internal/memstore"
	"github.com/sitedesk/sitedesk/pkg/analytics"
	"github.com/sitedesk/sitedesk/pkg/entity"
	"github.com/sitedesk/sitedesk/pkg/fieldmap"
	"github.com/sitedesk/sitedesk/pkg/query"
)

// Mode is the controller's view state.
type Mode string

const (
	// ModeListing shows the searchable, filterable record list.
	ModeListing Mode = "listing"
	// ModeViewing shows one selected record.
	ModeViewing Mode = "viewing"
	// ModeEditing shows the edit form for the selected record.
	ModeEditing Mode = "editing"
)

// Level classifies a status message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Status is the outcome message of the most recent operation. Each operation
// replaces it; there is never more than one.
type Status struct {
	Level   Level
	Message string
}

// Controller drives CRUD interaction for one entity type within a session.
type Controller struct {
	sessionID string
	def       entity.Definition
	store     entity.Store
	fellBack  bool

	mode          Mode
	selectedID    string
	selected      entity.Record
	pendingDelete string

	search    string
	primary   string
	secondary string

	cache      []entity.Record
	stale      bool
	status     *Status
	formErrors entity.FieldErrors
}

// New returns a listing-mode controller over the given store.
func New(def entity.Definition, store entity.Store) *Controller {
	return &Controller{
		sessionID: uuid.NewString(),
		def:       def,
		store:     store,
		mode:      ModeListing,
		primary:   query.FilterAll,
		secondary: query.FilterAll,
		stale:     true,
	}
}

// SessionID identifies this controller's session.
func (c *Controller) SessionID() string { return c.sessionID }

// Definition returns the entity definition the controller serves.
func (c *Controller) Definition() entity.Definition { return c.def }

// Mode returns the current view state.
func (c *Controller) Mode() Mode { return c.mode }

// SelectedID returns the id of the record being viewed or edited, or "".
func (c *Controller) SelectedID() string { return c.selectedID }

// Selected returns the snapshot of the record being viewed or edited.
func (c *Controller) Selected() entity.Record { return c.selected }

// Status returns the outcome of the most recent operation, or nil.
func (c *Controller) Status() *Status { return c.status }

// FormErrors returns the field errors of the last failed form submission.
func (c *Controller) FormErrors() entity.FieldErrors { return c.formErrors }

// SetSearch sets the free-text search term and cancels any pending delete.
func (c *Controller) SetSearch(term string) {
	c.search = term
	c.pendingDelete = ""
}

// SetPrimaryFilter sets the primary filter value and cancels any pending
// delete. The query.FilterAll sentinel disables the filter.
func (c *Controller) SetPrimaryFilter(value string) {
	c.primary = value
	c.pendingDelete = ""
}

// SetSecondaryFilter sets the secondary filter value and cancels any pending
// delete.
func (c *Controller) SetSecondaryFilter(value string) {
	c.secondary = value
	c.pendingDelete = ""
}

// Records returns the record list narrowed by the current search term and
// filters, all composed with logical AND. The unfiltered load is cached and
// invalidated by every successful mutation.
func (c *Controller) Records() ([]entity.Record, error) {
	all, err := c.load()
	if err != nil {
		c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not load records: %v", err)}
		return nil, err
	}
	out := query.Search(all, c.search, c.def.Display.SearchFields)
	if f := c.def.Display.PrimaryFilter; f != nil {
		out = query.Filter(out, f.Field, c.primary)
	}
	if f := c.def.Display.SecondaryFilter; f != nil {
		out = query.Filter(out, f.Field, c.secondary)
	}
	return out, nil
}

// FilterOptions returns the selectable values for the given filter field,
// derived from the records actually present.
func (c *Controller) FilterOptions(field string) ([]string, error) {
	all, err := c.load()
	if err != nil {
		return nil, err
	}
	return query.Options(all, field), nil
}

// View selects the record with the given id and switches to viewing mode.
// The selection is a snapshot; later store mutations do not change it.
func (c *Controller) View(id string) error {
	c.pendingDelete = ""
	rec, err := c.getByID(id)
	if err != nil {
		c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not load %s %s: %v", c.def.Display.ItemName, id, err)}
		return err
	}
	c.selected = rec
	c.selectedID = id
	c.mode = ModeViewing
	c.formErrors = nil
	return nil
}

// Edit loads the record with the given id into the edit form and switches to
// editing mode. The loaded values are a snapshot, like View.
func (c *Controller) Edit(id string) error {
	c.pendingDelete = ""
	rec, err := c.getByID(id)
	if err != nil {
		c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not load %s %s: %v", c.def.Display.ItemName, id, err)}
		return err
	}
	c.selected = rec
	c.selectedID = id
	c.formErrors = nil
	c.mode = ModeEditing
	return nil
}

// CancelEdit discards the edit form without persisting and returns to the
// list.
func (c *Controller) CancelEdit() {
	if c.mode != ModeEditing {
		return
	}
	c.Back()
}

// Back returns to listing mode and clears the selection.
func (c *Controller) Back() {
	c.pendingDelete = ""
	c.selectedID = ""
	c.selected = nil
	c.formErrors = nil
	c.mode = ModeListing
}

// Create parses raw form inputs through the field codecs and creates a
// record. On validation failure the field errors are kept for inline display
// and nothing is stored. On success the form state resets and the result
// cache is invalidated.
func (c *Controller) Create(inputs map[string]string) (entity.Record, error) {
	c.pendingDelete = ""
	candidate := fieldmap.ParseInputs(c.def.Schema, inputs)
	rec, err := c.create(candidate)
	if err != nil {
		if errors.As(err, &c.formErrors) {
			c.status = &Status{Level: LevelError, Message: "Please fix the highlighted fields"}
		} else {
			c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not save %s: %v", c.def.Display.ItemName, err)}
		}
		return nil, err
	}
	c.formErrors = nil
	c.stale = true
	c.status = &Status{Level: LevelSuccess, Message: fmt.Sprintf("%s %s created", c.def.Display.ItemName, rec.ID())}
	return rec, nil
}

// SubmitEdit parses raw form inputs and updates the record being edited. On
// validation failure the controller stays in editing mode with the field
// errors kept for inline display. On success the edit state clears and the
// controller returns to the list.
func (c *Controller) SubmitEdit(inputs map[string]string) (entity.Record, error) {
	if c.mode != ModeEditing {
		return nil, fmt.Errorf("not editing")
	}
	c.pendingDelete = ""
	partial := fieldmap.ParseInputs(c.def.Schema, inputs)
	rec, err := c.update(c.selectedID, partial)
	if err != nil {
		if errors.As(err, &c.formErrors) {
			c.status = &Status{Level: LevelError, Message: "Please fix the highlighted fields"}
		} else {
			c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not update %s %s: %v", c.def.Display.ItemName, c.selectedID, err)}
		}
		return nil, err
	}
	c.stale = true
	c.Back()
	c.status = &Status{Level: LevelSuccess, Message: fmt.Sprintf("%s %s updated", c.def.Display.ItemName, rec.ID())}
	return rec, nil
}

// Delete implements two-step deletion. The first call arms the confirmation
// for the given id and deletes nothing; the second call with the same id
// performs the delete. A call for a different id re-arms for that id, and
// every other controller operation disarms it. Returns whether a record was
// actually removed.
func (c *Controller) Delete(id string) (bool, error) {
	if c.pendingDelete != id {
		c.pendingDelete = id
		c.status = &Status{Level: LevelInfo, Message: fmt.Sprintf("Confirm deletion of %s %s", c.def.Display.ItemName, id)}
		return false, nil
	}

	c.pendingDelete = ""
	removed, err := c.delete(id)
	if err != nil {
		c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not delete %s %s: %v", c.def.Display.ItemName, id, err)}
		return false, err
	}
	c.stale = true
	if c.selectedID == id {
		c.Back()
	}
	if !removed {
		// Missing ids delete as a silent no-op.
		c.status = nil
		return false, nil
	}
	c.status = &Status{Level: LevelSuccess, Message: fmt.Sprintf("%s %s deleted", c.def.Display.ItemName, id)}
	return true, nil
}

// DeletePending reports whether deletion of the given id is armed and
// waiting for confirmation.
func (c *Controller) DeletePending(id string) bool {
	return c.pendingDelete != "" && c.pendingDelete == id
}

// Recent returns up to n records ordered newest created_at first, ignoring
// the active search and filters.
func (c *Controller) Recent(n int) ([]entity.Record, error) {
	recs, err := c.store.Recent(n)
	if err != nil && c.failover(err) {
		recs, err = c.store.Recent(n)
	}
	if err != nil {
		c.status = &Status{Level: LevelError, Message: fmt.Sprintf("Could not load recent records: %v", err)}
		return nil, err
	}
	return recs, nil
}

// Stats summarizes the full record set, ignoring search and filters.
func (c *Controller) Stats() (analytics.Summary, error) {
	all, err := c.load()
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(all, c.def.Display), nil
}

// load returns the unfiltered record list, from cache when fresh.
func (c *Controller) load() ([]entity.Record, error) {
	if !c.stale {
		return c.cache, nil
	}
	all, err := c.store.GetAll()
	if err != nil && c.failover(err) {
		all, err = c.store.GetAll()
	}
	if err != nil {
		return nil, err
	}
	c.cache = all
	c.stale = false
	return all, nil
}

func (c *Controller) getByID(id string) (entity.Record, error) {
	rec, err := c.store.GetByID(id)
	if err != nil && c.failover(err) {
		rec, err = c.store.GetByID(id)
	}
	return rec, err
}

func (c *Controller) create(data entity.Record) (entity.Record, error) {
	rec, err := c.store.Create(data)
	if err != nil && c.failover(err) {
		rec, err = c.store.Create(data)
	}
	return rec, err
}

func (c *Controller) update(id string, partial entity.Record) (entity.Record, error) {
	rec, err := c.store.Update(id, partial)
	if err != nil && c.failover(err) {
		rec, err = c.store.Update(id, partial)
	}
	return rec, err
}

func (c *Controller) delete(id string) (bool, error) {
	removed, err := c.store.Delete(id)
	if err != nil && c.failover(err) {
		removed, err = c.store.Delete(id)
	}
	return removed, err
}

// failover swaps the store for a fresh in-memory one when err is a storage
// fault, so the session keeps working without persistence. It fires at most
// once per controller and never on validation or not-found errors.
func (c *Controller) failover(err error) bool {
	if c.fellBack {
		return false
	}
	var fieldErrs entity.FieldErrors
	if errors.As(err, &fieldErrs) {
		return false
	}
	if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidID) || errors.Is(err, entity.ErrDuplicateID) {
		return false
	}
	c.store = memstore.New(c.def.Schema)
	c.fellBack = true
	c.stale = true
	c.status = &Status{Level: LevelInfo, Message: fmt.Sprintf("Storage unavailable, working with in-memory data (session %s)", c.sessionID)}
	return true
}
