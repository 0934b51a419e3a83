package memstore

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

func rfiSchema() entity.Schema {
	return entity.Schema{
		IDPrefix: "RFI",
		Fields: []entity.Field{
			{Name: "title", FieldSpec: entity.FieldSpec{Type: entity.TypeString, Required: true}},
			{Name: "priority", FieldSpec: entity.FieldSpec{Type: entity.TypeSelect, Options: []string{"Low", "Medium", "High"}}},
		},
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := New(rfiSchema())

	first, err := s.Create(entity.Record{"title": "Leak", "priority": "High"})
	require.NoError(t, err)
	assert.Equal(t, "RFI-001", first.ID())

	second, err := s.Create(entity.Record{"title": "Crack"})
	require.NoError(t, err)
	assert.Equal(t, "RFI-002", second.ID())

	assert.NotEmpty(t, first[entity.FieldCreatedAt])

	idPattern := regexp.MustCompile(`^RFI-\d{3}$`)
	all, err := s.GetAll()
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, r := range all {
		assert.Regexp(t, idPattern, r.ID())
		assert.False(t, seen[r.ID()], "duplicate id %s", r.ID())
		seen[r.ID()] = true
	}
}

func TestCreateReusesFreedIDs(t *testing.T) {
	s := New(rfiSchema())

	_, err := s.Create(entity.Record{"title": "A"})
	require.NoError(t, err)
	_, err = s.Create(entity.Record{"title": "B"})
	require.NoError(t, err)

	removed, err := s.Delete("RFI-001")
	require.NoError(t, err)
	require.True(t, removed)

	// Linear probing hands the freed number back out.
	third, err := s.Create(entity.Record{"title": "C"})
	require.NoError(t, err)
	assert.Equal(t, "RFI-001", third.ID())
}

func TestCreateValidationBlocksCommit(t *testing.T) {
	s := New(rfiSchema())

	_, err := s.Create(entity.Record{"priority": "High"})
	require.Error(t, err)

	var fieldErrs entity.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{"Required field 'title' is missing"}, fieldErrs.Messages())

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "failed create must not change store size")
}

func TestCreateRespectsProvidedID(t *testing.T) {
	s := New(rfiSchema())
	rec, err := s.Create(entity.Record{"id": "RFI-900", "title": "Imported"})
	require.NoError(t, err)
	assert.Equal(t, "RFI-900", rec.ID())
}

func TestCreateRejectsDuplicateExplicitID(t *testing.T) {
	s := New(rfiSchema())

	_, err := s.Create(entity.Record{"id": "RFI-001", "title": "First"})
	require.NoError(t, err)

	_, err = s.Create(entity.Record{"id": "RFI-001", "title": "Second"})
	require.ErrorIs(t, err, entity.ErrDuplicateID)

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1, "rejected create must not be appended")
	assert.Equal(t, "First", all[0]["title"])
}

func TestCreateExplicitIDCollidesWithAssigned(t *testing.T) {
	s := New(rfiSchema())

	assigned, err := s.Create(entity.Record{"title": "Auto"})
	require.NoError(t, err)
	require.Equal(t, "RFI-001", assigned.ID())

	_, err = s.Create(entity.Record{"id": "RFI-001", "title": "Clash"})
	assert.ErrorIs(t, err, entity.ErrDuplicateID)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	s := New(rfiSchema())
	titles := []string{"X", "Y", "Z"}
	for _, title := range titles {
		_, err := s.Create(entity.Record{"title": title})
		require.NoError(t, err)
	}

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, title := range titles {
		assert.Equal(t, title, all[i]["title"])
	}
}

func TestUpdateMergesAndStamps(t *testing.T) {
	s := New(rfiSchema())
	created, err := s.Create(entity.Record{"title": "Leak", "priority": "High", "extra": "kept"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID(), entity.Record{"priority": "Low"})
	require.NoError(t, err)
	assert.Equal(t, "Low", updated["priority"])
	assert.Equal(t, "Leak", updated["title"])
	assert.Equal(t, "kept", updated["extra"])
	assert.NotEmpty(t, updated[entity.FieldUpdatedAt])
}

func TestUpdateEmptyPartialIsNoOpExceptStamp(t *testing.T) {
	s := New(rfiSchema())
	created, err := s.Create(entity.Record{"title": "Leak", "priority": "High"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID(), entity.Record{})
	require.NoError(t, err)

	for k, v := range created {
		assert.Equal(t, v, updated[k], "field %s changed on empty update", k)
	}
	assert.NotEmpty(t, updated[entity.FieldUpdatedAt])
}

func TestUpdateNotFound(t *testing.T) {
	s := New(rfiSchema())
	_, err := s.Update("RFI-404", entity.Record{"title": "x"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateValidationLeavesRecordUnchanged(t *testing.T) {
	s := New(rfiSchema())
	created, err := s.Create(entity.Record{"title": "Leak"})
	require.NoError(t, err)

	_, err = s.Update(created.ID(), entity.Record{"title": ""})
	require.Error(t, err)

	stored, err := s.GetByID(created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Leak", stored["title"])
}

func TestDeleteIdempotent(t *testing.T) {
	s := New(rfiSchema())
	created, err := s.Create(entity.Record{"title": "Leak"})
	require.NoError(t, err)

	removed, err := s.Delete(created.ID())
	require.NoError(t, err)
	assert.True(t, removed)

	count, _ := s.Count()
	assert.Zero(t, count)

	removed, err = s.Delete(created.ID())
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing id is a no-op")

	count, _ = s.Count()
	assert.Zero(t, count)
}

func TestGetByID(t *testing.T) {
	s := New(rfiSchema())
	created, err := s.Create(entity.Record{"title": "Leak"})
	require.NoError(t, err)

	got, err := s.GetByID(created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Leak", got["title"])

	// The returned record is a copy, not a live reference.
	got["title"] = "Mutated"
	stored, err := s.GetByID(created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Leak", stored["title"])

	_, err = s.GetByID("RFI-404")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRecent(t *testing.T) {
	s := New(rfiSchema())
	for i := 1; i <= 5; i++ {
		_, err := s.Create(entity.Record{
			"title":      fmt.Sprintf("r%d", i),
			"created_at": fmt.Sprintf("2026-01-%02dT00:00:00Z", i),
		})
		require.NoError(t, err)
	}

	recent, err := s.Recent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "r5", recent[0]["title"])
	assert.Equal(t, "r4", recent[1]["title"])
	assert.Equal(t, "r3", recent[2]["title"])
}
