package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyagianshu04/krishi-mitra/internal/catalog"
)

func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore()
	require.NoError(t, err)
	return store
}

func TestLocationService_ListStates(t *testing.T) {
	service := NewLocationService(newTestCatalog(t))

	states := service.ListStates(context.Background())
	require.Len(t, states, 33)

	// Alphabetical by name.
	assert.True(t, sort.SliceIsSorted(states, func(i, j int) bool {
		return states[i].Name < states[j].Name
	}))
	assert.Equal(t, "Andhra Pradesh", states[0].Name)
	assert.Equal(t, "Arunachal Pradesh", states[1].Name)
	assert.Equal(t, "Assam", states[2].Name)

	for _, st := range states {
		assert.GreaterOrEqual(t, st.DistrictsCount, 0)
	}

	var punjab *StateSummary
	for i := range states {
		if states[i].Code == 3 {
			punjab = &states[i]
		}
	}
	require.NotNil(t, punjab)
	assert.Equal(t, "Punjab", punjab.Name)
	assert.Equal(t, 5, punjab.DistrictsCount)
}

func TestLocationService_ListDistricts(t *testing.T) {
	service := NewLocationService(newTestCatalog(t))

	districts := service.ListDistricts(context.Background(), 3)
	require.Len(t, districts, 5)

	names := make([]string, 0, len(districts))
	for _, d := range districts {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Amritsar", "Bathinda", "Jalandhar", "Ludhiana", "Patiala"}, names)
}

func TestLocationService_ListDistricts_UnknownState(t *testing.T) {
	service := NewLocationService(newTestCatalog(t))

	districts := service.ListDistricts(context.Background(), 999)
	assert.NotNil(t, districts)
	assert.Empty(t, districts)
}
