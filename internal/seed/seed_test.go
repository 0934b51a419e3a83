package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/memstore"
	"github.com/sitedesk/sitedesk/pkg/entity"
)

func TestApplyCreatesValidRecords(t *testing.T) {
	reg := entity.Builtin()
	stores := make(map[string]entity.Store)
	open := func(def entity.Definition) entity.Store {
		if s, ok := stores[def.Name]; ok {
			return s
		}
		s := memstore.New(def.Schema)
		stores[def.Name] = s
		return s
	}

	require.NoError(t, Apply(reg, open))

	for name, data := range samples {
		store, ok := stores[name]
		require.True(t, ok, "no store opened for %s", name)
		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, len(data), count, "entity %s", name)
	}

	rfis, err := stores["rfis"].GetAll()
	require.NoError(t, err)
	assert.Equal(t, "RFI-001", rfis[0].ID())
	assert.NotEmpty(t, rfis[0][entity.FieldCreatedAt])
}

func TestApplyIsIdempotent(t *testing.T) {
	reg := entity.Builtin()
	stores := make(map[string]entity.Store)
	open := func(def entity.Definition) entity.Store {
		if s, ok := stores[def.Name]; ok {
			return s
		}
		s := memstore.New(def.Schema)
		stores[def.Name] = s
		return s
	}

	require.NoError(t, Apply(reg, open))
	require.NoError(t, Apply(reg, open))

	count, err := stores["rfis"].Count()
	require.NoError(t, err)
	assert.Equal(t, len(samples["rfis"]), count)
}

func TestSamplesCoverOnlyKnownEntities(t *testing.T) {
	reg := entity.Builtin()
	for name := range samples {
		_, err := reg.Get(name)
		assert.NoError(t, err, "sample data for unknown entity %s", name)
	}
}
