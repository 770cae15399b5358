package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlaserp/backend/internal/domain"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, d := range Catalog() {
		_, dup := seen[d.ID]
		assert.False(t, dup, "duplicate task id %s", d.ID)
		seen[d.ID] = struct{}{}
	}
}

func TestCatalogModulesAreKnown(t *testing.T) {
	for _, d := range Catalog() {
		assert.True(t, domain.KnownModule(d.Module), "task %s references unknown module %s", d.ID, d.Module)
	}
}

func TestCatalogWorkItemsEcho(t *testing.T) {
	for _, d := range Catalog() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			value, err := d.Work()
			require.NoError(t, err)

			payload, ok := value.(Payload)
			require.True(t, ok, "work item must return a payload")
			assert.Contains(t, payload, "action")
		})
	}
}

func TestCatalogWorkItemsAreRepeatable(t *testing.T) {
	catalog := Catalog()
	first, err := catalog[0].Work()
	require.NoError(t, err)
	second, err := catalog[0].Work()
	require.NoError(t, err)
	assert.Equal(t, first, second, "stubs are pure echoes")
}
