package bearing

import (
	"math"

	"github.com/alexiusacademia/gotbb/internal/nds"
)

// CapacityResult holds the bearing capacity of one beam-to-column interface
type CapacityResult struct {
	Capacity        float64 `json:"capacity_lbs"`             // Rounded to the nearest lb
	EffectiveWidth  float64 `json:"effective_bearing_width"`  // in
	EffectiveLength float64 `json:"effective_bearing_length"` // in
}

// Area returns the effective bearing area (in²)
func (r CapacityResult) Area() float64 {
	return r.EffectiveWidth * r.EffectiveLength
}

// NonFireBearingCapacity calculates the ambient bearing capacity.
// The bearing width is the narrower of the beam and the column; the
// bearing length is the full routing length.
func NonFireBearingCapacity(beamWidth, columnWidth, stress, routingLength float64) CapacityResult {
	fcPerp := nds.DefaultAdjustedStress(stress)

	bearingWidth := beamWidth
	if columnWidth < beamWidth {
		bearingWidth = columnWidth
	}

	return CapacityResult{
		Capacity:        roundCapacity(fcPerp * bearingWidth * routingLength),
		EffectiveWidth:  bearingWidth,
		EffectiveLength: routingLength,
	}
}

// FireBearingCapacity calculates the bearing capacity after the column
// and the routed bearing surface have charred by charDepth.
//
// Char consumes both column faces, so the column is 2·charDepth narrower.
// Widths are not clamped; a column charred through gives a negative width.
func FireBearingCapacity(beamWidth, columnWidth, stress, routingLength, charDepth float64) CapacityResult {
	fcPerp := nds.DefaultAdjustedStress(stress)

	charredColumnWidth := columnWidth - charDepth*2

	bearingWidth := beamWidth
	if charredColumnWidth < beamWidth {
		bearingWidth = charredColumnWidth
	}

	// Bearing surface has charred through before reaching the beam
	bearingLength := 0.0
	if routingLength > charDepth {
		bearingLength = routingLength - charDepth
	}

	return CapacityResult{
		Capacity:        roundCapacity(fcPerp * bearingWidth * bearingLength),
		EffectiveWidth:  bearingWidth,
		EffectiveLength: bearingLength,
	}
}

// roundCapacity rounds half to even, matching existing hand calculations
func roundCapacity(lbs float64) float64 {
	c := math.RoundToEven(lbs)
	if c == 0 {
		// avoid -0 in reports
		return 0
	}
	return c
}
