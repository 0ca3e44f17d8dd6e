package catalog

import "github.com/Tyagianshu04/krishi-mitra/internal/model"

// Crop recommendation catalog. Order matters: ties on suitability score are
// broken by catalog position, so recommendation sorting must be stable.
var crops = []model.CropProfile{
	{
		CropName:         "Rice",
		SuitabilityScore: 92,
		AvgProfit:        45000,
		DurationDays:     120,
		WaterRequirement: "High",
		SoilType:         []string{"Loamy", "Clay"},
		BestPractices:    []string{"Direct seeding", "SRI method", "Proper water management"},
		Season:           model.SeasonKharif,
	},
	{
		CropName:         "Wheat",
		SuitabilityScore: 88,
		AvgProfit:        38000,
		DurationDays:     110,
		WaterRequirement: "Medium",
		SoilType:         []string{"Loamy", "Sandy Loam"},
		BestPractices:    []string{"Timely sowing", "Seed treatment", "Balanced fertilization"},
		Season:           model.SeasonRabi,
	},
	{
		CropName:         "Cotton",
		SuitabilityScore: 85,
		AvgProfit:        52000,
		DurationDays:     150,
		WaterRequirement: "Medium",
		SoilType:         []string{"Black", "Loamy"},
		BestPractices:    []string{"Integrated pest management", "Proper spacing"},
		Season:           model.SeasonKharif,
	},
	{
		CropName:         "Sugarcane",
		SuitabilityScore: 82,
		AvgProfit:        65000,
		DurationDays:     365,
		WaterRequirement: "Very High",
		SoilType:         []string{"Loamy", "Clay Loam"},
		BestPractices:    []string{"Drip irrigation", "Inter-cropping"},
		Season:           model.SeasonAnnual,
	},
	{
		CropName:         "Maize",
		SuitabilityScore: 80,
		AvgProfit:        32000,
		DurationDays:     90,
		WaterRequirement: "Medium",
		SoilType:         []string{"Loamy", "Sandy Loam"},
		BestPractices:    []string{"Hybrid seeds", "Mulching"},
		Season:           model.SeasonKharif,
	},
	{
		CropName:         "Soybean",
		SuitabilityScore: 78,
		AvgProfit:        35000,
		DurationDays:     100,
		WaterRequirement: "Medium",
		SoilType:         []string{"Loamy", "Clay"},
		BestPractices:    []string{"Rhizobium inoculation", "Proper drainage"},
		Season:           model.SeasonKharif,
	},
	{
		CropName:         "Mustard",
		SuitabilityScore: 75,
		AvgProfit:        28000,
		DurationDays:     110,
		WaterRequirement: "Low",
		SoilType:         []string{"Sandy Loam", "Loamy"},
		BestPractices:    []string{"Timely irrigation", "Aphid management"},
		Season:           model.SeasonRabi,
	},
	{
		CropName:         "Chickpea",
		SuitabilityScore: 72,
		AvgProfit:        30000,
		DurationDays:     100,
		WaterRequirement: "Low",
		SoilType:         []string{"Loamy", "Sandy"},
		BestPractices:    []string{"Seed treatment", "Pod borer management"},
		Season:           model.SeasonRabi,
	},
	{
		CropName:         "Groundnut",
		SuitabilityScore: 70,
		AvgProfit:        40000,
		DurationDays:     110,
		WaterRequirement: "Medium",
		SoilType:         []string{"Sandy Loam", "Red"},
		BestPractices:    []string{"Gypsum application", "Proper earthing up"},
		Season:           model.SeasonKharif,
	},
	{
		CropName:         "Sunflower",
		SuitabilityScore: 68,
		AvgProfit:        25000,
		DurationDays:     90,
		WaterRequirement: "Medium",
		SoilType:         []string{"Loamy", "Black"},
		BestPractices:    []string{"Bee pollination", "Head rot management"},
		Season:           model.SeasonRabi,
	},
}
