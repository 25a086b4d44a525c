package nds

// LoadCombination represents a dead + live load combination
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64 // D - Dead load
	Live float64 // L - Live load
}

// StrengthCombination is checked against the non-fire bearing capacity
var StrengthCombination = LoadCombination{
	ID:          "strength",
	Description: "1.2D + 1.6L",
	Dead:        1.2,
	Live:        1.6,
}

// ServiceCombination is checked against the fire bearing capacity.
// Fire design uses unfactored service loads.
var ServiceCombination = LoadCombination{
	ID:          "fire",
	Description: "D + L",
	Dead:        1.0,
	Live:        1.0,
}

// Combinations lists the combinations in the order they are reported
var Combinations = []LoadCombination{
	StrengthCombination,
	ServiceCombination,
}

// Factor calculates the combined load for the given unfactored loads (lbs)
func (lc LoadCombination) Factor(dead, live float64) float64 {
	return lc.Dead*dead + lc.Live*live
}

// BeamLoads holds the combined demand for a single beam
type BeamLoads struct {
	Factored   float64 // Strength combination (lbs)
	Unfactored float64 // Service combination (lbs)
}

// CombineBeamLoads applies both combinations to one beam's reactions
func CombineBeamLoads(dead, live float64) BeamLoads {
	return BeamLoads{
		Factored:   StrengthCombination.Factor(dead, live),
		Unfactored: ServiceCombination.Factor(dead, live),
	}
}
