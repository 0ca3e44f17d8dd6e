package catalog

import (
	"fmt"

	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// Store holds the immutable reference catalogs: states, districts and crop
// profiles. It is populated once at startup and read-only afterwards, so
// reads need no locking.
type Store struct {
	states    []model.State
	districts []model.District
	crops     []model.CropProfile
}

// NewStore loads the built-in catalogs. It fails if the data violates its
// integrity constraints rather than serving a broken catalog.
func NewStore() (*Store, error) {
	s := &Store{
		states:    states,
		districts: districts,
		crops:     crops,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) validate() error {
	codes := make(map[int]bool, len(s.states))
	for _, st := range s.states {
		if codes[st.Code] {
			return fmt.Errorf("duplicate state code %d", st.Code)
		}
		codes[st.Code] = true
	}
	for _, d := range s.districts {
		if !codes[d.StateCode] {
			return fmt.Errorf("district %q references unknown state code %d", d.Name, d.StateCode)
		}
	}
	for _, c := range s.crops {
		if c.SuitabilityScore < 0 || c.SuitabilityScore > 100 {
			return fmt.Errorf("crop %q has suitability score %d outside [0,100]", c.CropName, c.SuitabilityScore)
		}
	}
	return nil
}

// States returns a copy of the state catalog in catalog order.
func (s *Store) States() []model.State {
	out := make([]model.State, len(s.states))
	copy(out, s.states)
	return out
}

// Districts returns the districts belonging to stateCode, in catalog order.
// An unknown state code yields an empty slice, not an error.
func (s *Store) Districts(stateCode int) []model.District {
	out := []model.District{}
	for _, d := range s.districts {
		if d.StateCode == stateCode {
			out = append(out, d)
		}
	}
	return out
}

// DistrictCount returns the number of districts recorded for stateCode.
func (s *Store) DistrictCount(stateCode int) int {
	n := 0
	for _, d := range s.districts {
		if d.StateCode == stateCode {
			n++
		}
	}
	return n
}

// Crops returns a copy of the crop catalog in catalog order.
func (s *Store) Crops() []model.CropProfile {
	out := make([]model.CropProfile, len(s.crops))
	copy(out, s.crops)
	return out
}

// StatesCount returns the total number of states.
func (s *Store) StatesCount() int { return len(s.states) }

// DistrictsCount returns the total number of districts across all states.
func (s *Store) DistrictsCount() int { return len(s.districts) }
