package bearing

import (
	"math"

	"github.com/alexiusacademia/gotbb/internal/nds"
)

// NoBearingSentinel is the ratio reported when no bearing material remains
const NoBearingSentinel = 100000.0

// Status is the outcome of a demand/capacity check
type Status string

const (
	Pass Status = "PASS"
	Fail Status = "FAIL"
)

// Case identifies the design condition of a check
type Case string

const (
	NonFire Case = "non-fire"
	Fire    Case = "fire"
)

// Ratio returns demand/capacity rounded to three decimals.
// A capacity of zero or less returns NoBearingSentinel instead of dividing,
// as does a NaN demand or capacity.
func Ratio(demand, capacity float64) float64 {
	if !(capacity > 0) {
		return NoBearingSentinel
	}
	r := math.Round(demand/capacity*1000) / 1000
	if math.IsNaN(r) {
		return NoBearingSentinel
	}
	return r
}

// StatusFor maps a ratio to PASS (ratio ≤ 1) or FAIL. NaN fails.
func StatusFor(ratio float64) Status {
	if ratio <= 1 {
		return Pass
	}
	return Fail
}

// Check is a single demand/capacity comparison for one beam and case
type Check struct {
	Beam         int            `json:"beam"`
	Case         Case           `json:"case"`
	Demand       float64        `json:"demand_lbs"`
	Capacity     float64        `json:"capacity_lbs"`
	Ratio        float64        `json:"ratio"`
	Status       Status         `json:"status"`
	NoBearing    bool           `json:"no_bearing"`
	RequiredArea float64        `json:"required_area"` // in², demand / F'c⊥
	Result       CapacityResult `json:"result"`
}

// Passed reports whether the check passed
func (c Check) Passed() bool {
	return c.Status == Pass
}

func newCheck(beam int, c Case, demand, adjustedStress float64, result CapacityResult) Check {
	ratio := Ratio(demand, result.Capacity)

	var requiredArea float64
	if adjustedStress != 0 {
		requiredArea = demand / adjustedStress
	}

	return Check{
		Beam:         beam,
		Case:         c,
		Demand:       demand,
		Capacity:     result.Capacity,
		Ratio:        ratio,
		Status:       StatusFor(ratio),
		NoBearing:    !(result.Capacity > 0),
		RequiredArea: requiredArea,
		Result:       result,
	}
}

// Report bundles a node with its evaluation and the four checks
type Report struct {
	Node           BearingNode `json:"node"`
	Evaluation     Evaluation  `json:"evaluation"`
	AdjustedStress float64     `json:"adjusted_stress"` // F'c⊥ (psi)
	Checks         []Check     `json:"checks"`
	Warnings       []string    `json:"warnings,omitempty"`
}

// CheckNode evaluates a node and compares every demand to its capacity.
// Checks are ordered beam 1 non-fire, beam 1 fire, beam 2 non-fire, beam 2 fire.
func CheckNode(n BearingNode) Report {
	return checkEvaluated(n, Evaluate(n))
}

// CheckAll checks each node in order
func CheckAll(nodes []BearingNode) []Report {
	evals := EvaluateAll(nodes)
	reports := make([]Report, len(nodes))
	for i, n := range nodes {
		reports[i] = checkEvaluated(n, evals[i])
	}
	return reports
}

func checkEvaluated(n BearingNode, eval Evaluation) Report {
	fcPerp := nds.DefaultAdjustedStress(n.BaseAllowableStress)

	return Report{
		Node:           n,
		Evaluation:     eval,
		AdjustedStress: fcPerp,
		Checks: []Check{
			newCheck(1, NonFire, eval.Loads.Beam1Factored, fcPerp, eval.Beam1NonFire),
			newCheck(1, Fire, eval.Loads.Beam1Unfactored, fcPerp, eval.Beam1Fire),
			newCheck(2, NonFire, eval.Loads.Beam2Factored, fcPerp, eval.Beam2NonFire),
			newCheck(2, Fire, eval.Loads.Beam2Unfactored, fcPerp, eval.Beam2Fire),
		},
		Warnings: n.Warnings(),
	}
}

// Passed reports whether every check passed
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// Governing returns the check with the highest ratio
func (r Report) Governing() Check {
	var gov Check
	for i, c := range r.Checks {
		if i == 0 || c.Ratio > gov.Ratio {
			gov = c
		}
	}
	return gov
}
