package bearing

import (
	"fmt"

	"github.com/alexiusacademia/gotbb/internal/nds"
)

// BearingNode describes two beams routed into opposite faces of one column.
//
// Units are inches, pounds and psi throughout. A node is a plain value:
// evaluating it never modifies it.
type BearingNode struct {
	Name string `json:"name,omitempty"`

	// Beam 1
	Beam1Width         float64 `json:"beam1_width" validate:"gt=0"`
	Beam1Depth         float64 `json:"beam1_depth" validate:"gt=0"`
	Beam1DeadLoad      float64 `json:"beam1_dead_load" validate:"gte=0"`
	Beam1LiveLoad      float64 `json:"beam1_live_load" validate:"gte=0"`
	Beam1RoutingLength float64 `json:"beam1_routing_length" validate:"gt=0,ltefield=ColumnDepth"`

	// Beam 2
	Beam2Width         float64 `json:"beam2_width" validate:"gt=0"`
	Beam2Depth         float64 `json:"beam2_depth" validate:"gt=0"`
	Beam2DeadLoad      float64 `json:"beam2_dead_load" validate:"gte=0"`
	Beam2LiveLoad      float64 `json:"beam2_live_load" validate:"gte=0"`
	Beam2RoutingLength float64 `json:"beam2_routing_length" validate:"gt=0,ltefield=ColumnDepth"`

	// Column
	ColumnWidth float64 `json:"column_width" validate:"gt=0"`
	ColumnDepth float64 `json:"column_depth" validate:"gt=0"`

	// Design parameters
	BaseAllowableStress float64 `json:"base_allowable_stress" validate:"gt=0"` // Fc⊥ (psi)
	CharDepth           float64 `json:"char_depth" validate:"gte=0"`           // in
}

// LoadSet holds the demand on each beam
type LoadSet struct {
	Beam1Factored   float64 `json:"beam1_factored"`
	Beam1Unfactored float64 `json:"beam1_unfactored"`
	Beam2Factored   float64 `json:"beam2_factored"`
	Beam2Unfactored float64 `json:"beam2_unfactored"`
}

// CombineLoads applies the strength and service combinations to both beams
func CombineLoads(b1Dead, b1Live, b2Dead, b2Live float64) LoadSet {
	b1 := nds.CombineBeamLoads(b1Dead, b1Live)
	b2 := nds.CombineBeamLoads(b2Dead, b2Live)

	return LoadSet{
		Beam1Factored:   b1.Factored,
		Beam1Unfactored: b1.Unfactored,
		Beam2Factored:   b2.Factored,
		Beam2Unfactored: b2.Unfactored,
	}
}

// Evaluation holds every capacity and load derived from a BearingNode
type Evaluation struct {
	Beam1NonFire CapacityResult `json:"beam1_nonfire"`
	Beam2NonFire CapacityResult `json:"beam2_nonfire"`
	Beam1Fire    CapacityResult `json:"beam1_fire"`
	Beam2Fire    CapacityResult `json:"beam2_fire"`
	Loads        LoadSet        `json:"loads"`
}

// Evaluate computes both beams' non-fire and fire capacities and the
// combined loads. Inputs are not validated; see BearingNode.Validate.
func Evaluate(n BearingNode) Evaluation {
	return Evaluation{
		Beam1NonFire: NonFireBearingCapacity(n.Beam1Width, n.ColumnWidth, n.BaseAllowableStress, n.Beam1RoutingLength),
		Beam2NonFire: NonFireBearingCapacity(n.Beam2Width, n.ColumnWidth, n.BaseAllowableStress, n.Beam2RoutingLength),
		Beam1Fire:    FireBearingCapacity(n.Beam1Width, n.ColumnWidth, n.BaseAllowableStress, n.Beam1RoutingLength, n.CharDepth),
		Beam2Fire:    FireBearingCapacity(n.Beam2Width, n.ColumnWidth, n.BaseAllowableStress, n.Beam2RoutingLength, n.CharDepth),
		Loads:        CombineLoads(n.Beam1DeadLoad, n.Beam1LiveLoad, n.Beam2DeadLoad, n.Beam2LiveLoad),
	}
}

// Evaluate is shorthand for Evaluate(n)
func (n BearingNode) Evaluate() Evaluation {
	return Evaluate(n)
}

// EvaluateAll evaluates each node in order
func EvaluateAll(nodes []BearingNode) []Evaluation {
	results := make([]Evaluation, len(nodes))
	for i, n := range nodes {
		results[i] = Evaluate(n)
	}
	return results
}

// Label returns the node name, or a positional label when unnamed
func (n BearingNode) Label(index int) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("Node %d", index+1)
}
