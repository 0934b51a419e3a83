package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/memstore"
	"github.com/sitedesk/sitedesk/pkg/entity"
)

func rfiDefinition() entity.Definition {
	return entity.Definition{
		Name: "rfis",
		Schema: entity.Schema{
			IDPrefix: "RFI",
			Fields: []entity.Field{
				{Name: "title", FieldSpec: entity.FieldSpec{Type: entity.TypeString, Required: true}},
				{Name: "status", FieldSpec: entity.FieldSpec{Type: entity.TypeSelect, Options: []string{"Open", "In Progress", "Closed"}}},
				{Name: "priority", FieldSpec: entity.FieldSpec{Type: entity.TypeSelect, Options: []string{"Low", "Medium", "High"}}},
			},
		},
		Display: entity.DisplayConfig{
			Title:           "RFI Management",
			ItemName:        "RFI",
			TitleField:      "title",
			SearchFields:    []string{"id", "title"},
			PrimaryFilter:   &entity.FilterRef{Field: "status", Label: "Status"},
			SecondaryFilter: &entity.FilterRef{Field: "priority", Label: "Priority"},
		},
	}
}

func newController() *Controller {
	def := rfiDefinition()
	return New(def, memstore.New(def.Schema))
}

func TestNewStartsListing(t *testing.T) {
	c := newController()
	assert.Equal(t, ModeListing, c.Mode())
	assert.NotEmpty(t, c.SessionID())
	assert.NotEqual(t, c.SessionID(), newController().SessionID())
}

func TestCreateSuccess(t *testing.T) {
	c := newController()

	rec, err := c.Create(map[string]string{"title": "Leak", "status": "Open", "priority": "High"})
	require.NoError(t, err)
	assert.Equal(t, "RFI-001", rec.ID())

	require.NotNil(t, c.Status())
	assert.Equal(t, LevelSuccess, c.Status().Level)
	assert.Equal(t, "RFI RFI-001 created", c.Status().Message)
	assert.Nil(t, c.FormErrors())

	records, err := c.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestCreateValidationFailure(t *testing.T) {
	c := newController()

	_, err := c.Create(map[string]string{"status": "Open"})
	require.Error(t, err)

	require.NotEmpty(t, c.FormErrors())
	assert.Equal(t, []string{"Required field 'title' is missing"}, c.FormErrors().Messages())
	assert.Equal(t, LevelError, c.Status().Level)

	records, err := c.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateCoercesSelectInput(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak", "status": "Bogus"})
	require.NoError(t, err)
	assert.Equal(t, "Open", rec["status"], "unknown select value coerces to the first option")
}

func TestCreateDuplicateIDKeepsStore(t *testing.T) {
	c := newController()

	_, err := c.Create(map[string]string{"id": "RFI-001", "title": "First"})
	require.NoError(t, err)

	_, err = c.Create(map[string]string{"id": "RFI-001", "title": "Second"})
	require.ErrorIs(t, err, entity.ErrDuplicateID)
	assert.Equal(t, LevelError, c.Status().Level)

	records, err := c.Records()
	require.NoError(t, err)
	require.Len(t, records, 1, "duplicate id must not swap in an empty fallback store")
	assert.Equal(t, "First", records[0]["title"])
}

func TestViewTakesSnapshot(t *testing.T) {
	c := newController()
	store := memstore.New(rfiDefinition().Schema)
	c.store = store

	created, err := store.Create(entity.Record{"title": "Leak", "status": "Open"})
	require.NoError(t, err)

	require.NoError(t, c.View(created.ID()))
	assert.Equal(t, ModeViewing, c.Mode())
	assert.Equal(t, created.ID(), c.SelectedID())

	_, err = store.Update(created.ID(), entity.Record{"title": "Changed"})
	require.NoError(t, err)
	assert.Equal(t, "Leak", c.Selected()["title"], "selection is a snapshot")
}

func TestViewNotFound(t *testing.T) {
	c := newController()
	err := c.View("RFI-404")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, ModeListing, c.Mode())
	assert.Equal(t, LevelError, c.Status().Level)
}

func TestEditSubmitCycle(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak", "status": "Open", "priority": "High"})
	require.NoError(t, err)

	require.NoError(t, c.Edit(rec.ID()))
	assert.Equal(t, ModeEditing, c.Mode())
	assert.Equal(t, "Leak", c.EditValues()["title"])

	updated, err := c.SubmitEdit(map[string]string{"status": "Closed"})
	require.NoError(t, err)
	assert.Equal(t, ModeListing, c.Mode(), "submit success clears the edit state")
	assert.Equal(t, "Closed", updated["status"])
	assert.Equal(t, "RFI RFI-001 updated", c.Status().Message)

	stored, err := c.Records()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Closed", stored[0]["status"])
}

func TestSubmitEditValidationStaysEditing(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak"})
	require.NoError(t, err)

	require.NoError(t, c.Edit(rec.ID()))

	_, err = c.SubmitEdit(map[string]string{"title": ""})
	require.Error(t, err)
	assert.Equal(t, ModeEditing, c.Mode())
	require.NotEmpty(t, c.FormErrors())

	c.CancelEdit()
	assert.Equal(t, ModeListing, c.Mode(), "cancel discards without persisting")
	assert.Nil(t, c.FormErrors())

	stored, err := c.Records()
	require.NoError(t, err)
	assert.Equal(t, "Leak", stored[0]["title"])
}

func TestEditNotFound(t *testing.T) {
	c := newController()
	err := c.Edit("RFI-404")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, ModeListing, c.Mode())
}

func TestSubmitEditOutsideEditing(t *testing.T) {
	c := newController()
	_, err := c.SubmitEdit(map[string]string{"title": "x"})
	assert.Error(t, err)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak"})
	require.NoError(t, err)

	removed, err := c.Delete(rec.ID())
	require.NoError(t, err)
	assert.False(t, removed, "first click only arms the confirmation")
	assert.True(t, c.DeletePending(rec.ID()))
	assert.Equal(t, LevelInfo, c.Status().Level)

	records, err := c.Records()
	require.NoError(t, err)
	require.Len(t, records, 1, "nothing deleted before confirmation")

	removed, err = c.Delete(rec.ID())
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, c.DeletePending(rec.ID()))

	records, err = c.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteMissingIDStaysQuiet(t *testing.T) {
	c := newController()

	_, err := c.Delete("RFI-404")
	require.NoError(t, err)
	require.True(t, c.DeletePending("RFI-404"))

	removed, err := c.Delete("RFI-404")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Nil(t, c.Status(), "no success message for a record that was never there")
}

func TestDeleteRearmsForDifferentID(t *testing.T) {
	c := newController()
	a, err := c.Create(map[string]string{"title": "A"})
	require.NoError(t, err)
	b, err := c.Create(map[string]string{"title": "B"})
	require.NoError(t, err)

	_, err = c.Delete(a.ID())
	require.NoError(t, err)

	removed, err := c.Delete(b.ID())
	require.NoError(t, err)
	assert.False(t, removed, "switching targets re-arms instead of deleting")
	assert.False(t, c.DeletePending(a.ID()))
	assert.True(t, c.DeletePending(b.ID()))
}

func TestOtherActionsDisarmDelete(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak"})
	require.NoError(t, err)

	_, err = c.Delete(rec.ID())
	require.NoError(t, err)
	require.True(t, c.DeletePending(rec.ID()))

	c.SetSearch("leak")
	assert.False(t, c.DeletePending(rec.ID()))

	_, err = c.Delete(rec.ID())
	require.NoError(t, err)
	require.NoError(t, c.View(rec.ID()))
	assert.False(t, c.DeletePending(rec.ID()))
}

func TestDeleteViewedRecordReturnsToListing(t *testing.T) {
	c := newController()
	rec, err := c.Create(map[string]string{"title": "Leak"})
	require.NoError(t, err)
	require.NoError(t, c.View(rec.ID()))

	_, err = c.Delete(rec.ID())
	require.NoError(t, err)
	removed, err := c.Delete(rec.ID())
	require.NoError(t, err)
	require.True(t, removed)

	assert.Equal(t, ModeListing, c.Mode())
	assert.Empty(t, c.SelectedID())
}

func TestRecordsComposesSearchAndFilters(t *testing.T) {
	c := newController()
	seed := []map[string]string{
		{"title": "Roof leak", "status": "Open", "priority": "High"},
		{"title": "Roof drain", "status": "Open", "priority": "Low"},
		{"title": "Roof flashing", "status": "Closed", "priority": "High"},
		{"title": "Window seal", "status": "Open", "priority": "High"},
	}
	for _, inputs := range seed {
		_, err := c.Create(inputs)
		require.NoError(t, err)
	}

	c.SetSearch("roof")
	c.SetPrimaryFilter("Open")
	c.SetSecondaryFilter("High")

	records, err := c.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Roof leak", records[0]["title"])
}

func TestFilterOptions(t *testing.T) {
	c := newController()
	_, err := c.Create(map[string]string{"title": "A", "status": "Open"})
	require.NoError(t, err)
	_, err = c.Create(map[string]string{"title": "B", "status": "Closed"})
	require.NoError(t, err)

	opts, err := c.FilterOptions("status")
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Closed", "Open"}, opts)
}

func TestStats(t *testing.T) {
	c := newController()
	for i := 0; i < 3; i++ {
		_, err := c.Create(map[string]string{"title": "A", "status": "Open"})
		require.NoError(t, err)
	}
	_, err := c.Create(map[string]string{"title": "B", "status": "Closed"})
	require.NoError(t, err)

	c.SetPrimaryFilter("Closed")

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total, "stats ignore the active filters")
	assert.Equal(t, 3, stats.ActiveLike)
	assert.Equal(t, float64(25), stats.CompletionRate)
}

func TestDerivedForm(t *testing.T) {
	c := newController()
	form := c.Form()
	require.Len(t, form.Fields, 3)
	assert.Equal(t, "title", form.Fields[0].Key)
	assert.Equal(t, "Title", form.Fields[0].Label)
	assert.True(t, form.Fields[0].Required)
	assert.Equal(t, []string{"Open", "In Progress", "Closed"}, form.Fields[1].Options)
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Due Date", titleize("due_date"))
	assert.Equal(t, "Title", titleize("title"))
	assert.Equal(t, "Cost Impact", titleize("cost_impact"))
}

// faultyStore fails every operation with a storage error.
type faultyStore struct{}

var errDisk = errors.New("disk fault")

func (faultyStore) GetAll() ([]entity.Record, error)                    { return nil, errDisk }
func (faultyStore) GetByID(string) (entity.Record, error)               { return nil, errDisk }
func (faultyStore) Create(entity.Record) (entity.Record, error)         { return nil, errDisk }
func (faultyStore) Update(string, entity.Record) (entity.Record, error) { return nil, errDisk }
func (faultyStore) Delete(string) (bool, error)                         { return false, errDisk }
func (faultyStore) Count() (int, error)                                 { return 0, errDisk }
func (faultyStore) Recent(int) ([]entity.Record, error)                 { return nil, errDisk }

func TestFailoverToMemory(t *testing.T) {
	def := rfiDefinition()
	c := New(def, faultyStore{})

	rec, err := c.Create(map[string]string{"title": "Leak"})
	require.NoError(t, err, "create retries on the in-memory fallback")
	assert.Equal(t, "RFI-001", rec.ID())

	records, err := c.Records()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFailoverStatusNamesSession(t *testing.T) {
	def := rfiDefinition()
	c := New(def, faultyStore{})

	_, err := c.Records()
	require.NoError(t, err)

	require.NotNil(t, c.Status())
	assert.Equal(t, LevelInfo, c.Status().Level)
	assert.Contains(t, c.Status().Message, c.SessionID())
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	def := rfiDefinition()
	store := memstore.New(def.Schema)
	stamps := map[string]string{
		"Old": "2026-01-01T00:00:00Z",
		"New": "2026-03-01T00:00:00Z",
		"Mid": "2026-02-01T00:00:00Z",
	}
	for _, title := range []string{"Old", "New", "Mid"} {
		_, err := store.Create(entity.Record{"title": title, "created_at": stamps[title]})
		require.NoError(t, err)
	}

	c := New(def, store)
	c.SetSearch("old")

	recent, err := c.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2, "recent ignores the active search")
	assert.Equal(t, "New", recent[0]["title"])
	assert.Equal(t, "Mid", recent[1]["title"])
}

func TestFailoverDoesNotSwallowValidation(t *testing.T) {
	c := newController()
	_, err := c.Create(map[string]string{})
	require.Error(t, err)

	var fieldErrs entity.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs, "validation errors never trigger the fallback")

	records, err := c.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}
