package service

import (
	"context"
	"sort"

	"github.com/Tyagianshu04/krishi-mitra/internal/catalog"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// CropService recommends crops for a cropping season.
type CropService interface {
	Recommend(ctx context.Context, seasonID int) ([]model.CropProfile, model.Season)
}

type cropService struct {
	catalog *catalog.Store
}

// NewCropService builds a CropService over the reference catalog.
func NewCropService(cat *catalog.Store) CropService {
	return &cropService{catalog: cat}
}

// Recommend returns the crops matching the season mapped from seasonID
// (annual crops match every season), sorted by suitability score descending.
// The sort is stable: ties keep catalog order.
func (s *cropService) Recommend(ctx context.Context, seasonID int) ([]model.CropProfile, model.Season) {
	season := model.SeasonFromID(seasonID)

	matched := []model.CropProfile{}
	for _, c := range s.catalog.Crops() {
		if c.InSeason(season) {
			matched = append(matched, c)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SuitabilityScore > matched[j].SuitabilityScore
	})

	return matched, season
}
