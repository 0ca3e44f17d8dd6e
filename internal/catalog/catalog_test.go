package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

func TestNewStore(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	assert.Equal(t, 33, store.StatesCount())
	assert.Greater(t, store.DistrictsCount(), 0)
	assert.Len(t, store.Crops(), 10)
}

func TestStore_Districts(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	// Punjab carries five districts in catalog order.
	punjab := store.Districts(3)
	names := make([]string, 0, len(punjab))
	for _, d := range punjab {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Amritsar", "Ludhiana", "Jalandhar", "Patiala", "Bathinda"}, names)
	assert.Equal(t, 5, store.DistrictCount(3))

	for _, d := range punjab {
		assert.Equal(t, 3, d.StateCode)
		assert.NotZero(t, d.Lat)
		assert.NotZero(t, d.Lon)
	}

	// Unknown state codes yield an empty, non-nil slice.
	unknown := store.Districts(999)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestStore_Integrity(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	codes := make(map[int]bool)
	for _, st := range store.States() {
		assert.False(t, codes[st.Code], "state code %d appears twice", st.Code)
		codes[st.Code] = true
		assert.NotEmpty(t, st.Name)
	}

	total := 0
	for code := range codes {
		total += store.DistrictCount(code)
	}
	assert.Equal(t, store.DistrictsCount(), total)
}

func TestStore_Crops(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	seasons := map[model.Season]bool{
		model.SeasonKharif: true,
		model.SeasonRabi:   true,
		model.SeasonZaid:   true,
		model.SeasonAnnual: true,
	}

	for _, c := range store.Crops() {
		assert.NotEmpty(t, c.CropName)
		assert.GreaterOrEqual(t, c.SuitabilityScore, 0)
		assert.LessOrEqual(t, c.SuitabilityScore, 100)
		assert.Greater(t, c.DurationDays, 0)
		assert.True(t, seasons[c.Season], "crop %s has unknown season %q", c.CropName, c.Season)
		assert.NotEmpty(t, c.SoilType)
		assert.NotEmpty(t, c.BestPractices)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	states := store.States()
	states[0].Name = "Mutated"
	assert.NotEqual(t, "Mutated", store.States()[0].Name)

	crops := store.Crops()
	crops[0].SuitabilityScore = -1
	assert.NotEqual(t, -1, store.Crops()[0].SuitabilityScore)
}
