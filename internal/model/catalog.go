package model

// State is an immutable reference entity identified by its LGD code.
// Codes are stable but not contiguous.
type State struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// District belongs to exactly one state via StateCode.
type District struct {
	Code      int     `json:"code"`
	Name      string  `json:"name"`
	StateCode int     `json:"state_code"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// Season is a cropping season.
type Season string

// Cropping seasons. Annual crops match every season query.
const (
	SeasonKharif Season = "Kharif"
	SeasonRabi   Season = "Rabi"
	SeasonZaid   Season = "Zaid"
	SeasonAnnual Season = "Annual"
)

// SeasonFromID maps a numeric season identifier to a season name.
// Unknown identifiers fall back to Kharif.
func SeasonFromID(id int) Season {
	switch id {
	case 2:
		return SeasonRabi
	case 3:
		return SeasonZaid
	default:
		return SeasonKharif
	}
}

// CropProfile describes one crop in the recommendation catalog.
type CropProfile struct {
	CropName         string   `json:"crop_name"`
	SuitabilityScore int      `json:"suitability_score"`
	AvgProfit        int      `json:"avg_profit"`
	DurationDays     int      `json:"duration_days"`
	WaterRequirement string   `json:"water_requirement"`
	SoilType         []string `json:"soil_type"`
	BestPractices    []string `json:"best_practices"`
	Season           Season   `json:"season"`
}

// InSeason reports whether the crop should be recommended for season s.
func (c CropProfile) InSeason(s Season) bool {
	return c.Season == s || c.Season == SeasonAnnual
}
