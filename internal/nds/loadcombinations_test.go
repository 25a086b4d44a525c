package nds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineBeamLoads(t *testing.T) {
	loads := CombineBeamLoads(1, 1)
	assert.InDelta(t, 2.8, loads.Factored, 1e-12)
	assert.InDelta(t, 2.0, loads.Unfactored, 1e-12)

	loads = CombineBeamLoads(2000, 3000)
	assert.InDelta(t, 7200, loads.Factored, 1e-9)
	assert.InDelta(t, 5000, loads.Unfactored, 1e-9)
}

func TestLoadCombinationFactor(t *testing.T) {
	assert.InDelta(t, 1.2, StrengthCombination.Factor(1, 0), 1e-12)
	assert.InDelta(t, 1.6, StrengthCombination.Factor(0, 1), 1e-12)
	assert.Equal(t, 0.0, ServiceCombination.Factor(0, 0))
	assert.Len(t, Combinations, 2)
	assert.Equal(t, "1.2D + 1.6L", Combinations[0].Description)
}
