package domain

// Food is one row of the static nutrient dataset. Values are per 100 g;
// nil means the dataset had no usable number.
type Food struct {
	Description   string
	EnergyPer100  *float64
	ProteinPer100 *float64
	FatPer100     *float64
	CarbPer100    *float64
}

// Profile converts the food's values into a NutrientProfile for a meal entry.
func (f Food) Profile() NutrientProfile {
	return NutrientProfile{
		EnergyPer100:  f.EnergyPer100,
		ProteinPer100: f.ProteinPer100,
		FatPer100:     f.FatPer100,
		CarbPer100:    f.CarbPer100,
	}
}
