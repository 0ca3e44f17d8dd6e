package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tyagianshu04/krishi-mitra/internal/cache"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/weather"
)

// weatherCacheTTL keeps consecutive reads for the same district stable for a
// short window even though the provider is random.
const weatherCacheTTL = 10 * time.Minute

// WeatherService serves current-conditions snapshots for a district.
type WeatherService interface {
	Current(ctx context.Context, stateCode, districtCode int) (*model.WeatherSnapshot, error)
}

type weatherService struct {
	provider weather.Provider
	cache    *cache.Client
}

// NewWeatherService builds a WeatherService with a provider and cache.
func NewWeatherService(provider weather.Provider, cache *cache.Client) WeatherService {
	return &weatherService{provider: provider, cache: cache}
}

func (s *weatherService) cacheKey(stateCode, districtCode int) string {
	return fmt.Sprintf("weather:%d:%d", stateCode, districtCode)
}

// Current returns the cached snapshot for the district if fresh, otherwise
// asks the provider and caches the result.
func (s *weatherService) Current(ctx context.Context, stateCode, districtCode int) (*model.WeatherSnapshot, error) {
	key := s.cacheKey(stateCode, districtCode)

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.WeatherSnapshot
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	snapshot, err := s.provider.Snapshot(ctx, stateCode, districtCode)
	if err != nil {
		return nil, fmt.Errorf("weather snapshot: %w", err)
	}

	if payload, err := json.Marshal(snapshot); err == nil {
		_ = s.cache.Set(ctx, key, payload, weatherCacheTTL)
	}
	return snapshot, nil
}
