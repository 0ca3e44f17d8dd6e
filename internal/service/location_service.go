package service

import (
	"context"
	"sort"

	"github.com/Tyagianshu04/krishi-mitra/internal/catalog"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// StateSummary pairs a state with the number of districts recorded for it.
type StateSummary struct {
	Code           int    `json:"code"`
	Name           string `json:"name"`
	DistrictsCount int    `json:"districts_count"`
}

// LocationService answers state and district queries against the reference
// catalog. All operations are stateless reads.
type LocationService interface {
	ListStates(ctx context.Context) []StateSummary
	ListDistricts(ctx context.Context, stateCode int) []model.District
}

type locationService struct {
	catalog *catalog.Store
}

// NewLocationService builds a LocationService over the reference catalog.
func NewLocationService(cat *catalog.Store) LocationService {
	return &locationService{catalog: cat}
}

// ListStates returns every state sorted by name ascending, each annotated
// with its district count.
func (s *locationService) ListStates(ctx context.Context) []StateSummary {
	states := s.catalog.States()
	sort.Slice(states, func(i, j int) bool {
		return states[i].Name < states[j].Name
	})

	out := make([]StateSummary, 0, len(states))
	for _, st := range states {
		out = append(out, StateSummary{
			Code:           st.Code,
			Name:           st.Name,
			DistrictsCount: s.catalog.DistrictCount(st.Code),
		})
	}
	return out
}

// ListDistricts returns the districts of a state sorted by name ascending.
// An unknown state code yields an empty slice, not an error.
func (s *locationService) ListDistricts(ctx context.Context, stateCode int) []model.District {
	districts := s.catalog.Districts(stateCode)
	sort.Slice(districts, func(i, j int) bool {
		return districts[i].Name < districts[j].Name
	})
	return districts
}
