package weather

import (
	"context"
	"math/rand"

	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// Provider produces a weather snapshot for a district. The context is
// accepted so a real forecast integration can honor deadlines and
// cancellation; the synthetic provider only checks for early cancellation.
type Provider interface {
	Snapshot(ctx context.Context, stateCode, districtCode int) (*model.WeatherSnapshot, error)
}

var conditions = []string{"Partly Cloudy", "Sunny", "Light Rain", "Cloudy", "Clear"}

var warnings = []string{
	"Moderate rainfall expected. Good for Kharif sowing.",
	"Clear skies expected. Ideal for harvesting.",
	"Light showers possible. Plan irrigation accordingly.",
	"Hot and dry conditions. Ensure adequate irrigation.",
	"Pleasant weather. Good for field activities.",
}

// Forecast day labels with their max/min offsets from the base temperature.
var forecastDays = []struct {
	day      string
	maxDelta int
	minDelta int
}{
	{"Today", 4, -4},
	{"Tomorrow", 3, -5},
	{"Day 3", 2, -3},
	{"Day 4", 5, -2},
	{"Day 5", 3, -4},
}

// SyntheticProvider fabricates plausible readings with bounded randomness.
// Outputs are non-deterministic; tests should only check bounds, never exact
// values. It stands in for a real provider integration.
type SyntheticProvider struct{}

// NewSyntheticProvider creates a synthetic weather provider.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

// Snapshot synthesizes current conditions and a 5-day forecast.
// Temperature is 28°C plus a bounded offset; humidity stays within 55-85%.
func (p *SyntheticProvider) Snapshot(ctx context.Context, stateCode, districtCode int) (*model.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baseTemp := 28 + rand.Intn(11) - 5

	forecast := make([]model.ForecastDay, 0, len(forecastDays))
	for _, d := range forecastDays {
		forecast = append(forecast, model.ForecastDay{
			Day:       d.day,
			Condition: conditions[rand.Intn(len(conditions))],
			TempMax:   baseTemp + d.maxDelta,
			TempMin:   baseTemp + d.minDelta,
		})
	}

	return &model.WeatherSnapshot{
		Temperature: baseTemp,
		Humidity:    55 + rand.Intn(31),
		Rainfall:    rand.Intn(21),
		WindSpeed:   5 + rand.Intn(16),
		Condition:   conditions[rand.Intn(len(conditions))],
		Warning:     warnings[rand.Intn(len(warnings))],
		Forecast:    forecast,
	}, nil
}
