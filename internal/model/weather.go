package model

// WeatherSnapshot is a synthesized current-conditions reading for a district.
// Values are fabricated within plausible bounds; they are not real forecasts.
type WeatherSnapshot struct {
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Rainfall    int           `json:"rainfall"`
	WindSpeed   int           `json:"wind_speed"`
	Condition   string        `json:"condition"`
	Warning     string        `json:"warning"`
	Forecast    []ForecastDay `json:"forecast"`
}

// ForecastDay is one entry of the 5-day outlook.
type ForecastDay struct {
	Day       string `json:"day"`
	Condition string `json:"condition"`
	TempMax   int    `json:"temp_max"`
	TempMin   int    `json:"temp_min"`
}
