package bearing

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// sampleNode mirrors the default inputs of the bearing calculator
func sampleNode() BearingNode {
	return BearingNode{
		Beam1Width:          6,
		Beam1Depth:          10,
		Beam1DeadLoad:       1000,
		Beam1LiveLoad:       1000,
		Beam1RoutingLength:  3,
		Beam2Width:          8,
		Beam2Depth:          12,
		Beam2DeadLoad:       2000,
		Beam2LiveLoad:       3000,
		Beam2RoutingLength:  4,
		ColumnWidth:         8,
		ColumnDepth:         10,
		BaseAllowableStress: 430,
		CharDepth:           1.8,
	}
}

type EvaluateTestSuite struct {
	suite.Suite
	node BearingNode
}

func (s *EvaluateTestSuite) SetupTest() {
	s.node = sampleNode()
}

func (s *EvaluateTestSuite) TestEvaluate() {
	eval := Evaluate(s.node)

	// 646.29 psi × 6 × 3
	s.Equal(11633.0, eval.Beam1NonFire.Capacity)
	s.Equal(6.0, eval.Beam1NonFire.EffectiveWidth)
	s.Equal(3.0, eval.Beam1NonFire.EffectiveLength)

	// column governs: 646.29 × 8 × 4
	s.Equal(20681.0, eval.Beam2NonFire.Capacity)
	s.Equal(8.0, eval.Beam2NonFire.EffectiveWidth)

	// charred column 4.4 in governs both beams
	s.InDelta(4.4, eval.Beam1Fire.EffectiveWidth, 1e-9)
	s.InDelta(1.2, eval.Beam1Fire.EffectiveLength, 1e-9)
	s.Equal(3412.0, eval.Beam1Fire.Capacity)
	s.InDelta(2.2, eval.Beam2Fire.EffectiveLength, 1e-9)
	s.Equal(6256.0, eval.Beam2Fire.Capacity)

	s.InDelta(2800.0, eval.Loads.Beam1Factored, 1e-9)
	s.InDelta(2000.0, eval.Loads.Beam1Unfactored, 1e-9)
	s.InDelta(7200.0, eval.Loads.Beam2Factored, 1e-9)
	s.InDelta(5000.0, eval.Loads.Beam2Unfactored, 1e-9)
}

func (s *EvaluateTestSuite) TestEvaluateIdempotent() {
	first := s.node.Evaluate()
	second := s.node.Evaluate()
	s.Equal(first, second)
	s.Equal(sampleNode(), s.node)
}

func (s *EvaluateTestSuite) TestEvaluateAllPreservesOrder() {
	other := s.node
	other.Beam1RoutingLength = 5

	results := EvaluateAll([]BearingNode{s.node, other})
	s.Len(results, 2)
	s.Equal(Evaluate(s.node), results[0])
	s.Equal(Evaluate(other), results[1])
}

func (s *EvaluateTestSuite) TestCombineLoads() {
	loads := CombineLoads(1, 1, 1, 1)
	s.InDelta(2.8, loads.Beam1Factored, 1e-12)
	s.InDelta(2.0, loads.Beam1Unfactored, 1e-12)
	s.InDelta(2.8, loads.Beam2Factored, 1e-12)
	s.InDelta(2.0, loads.Beam2Unfactored, 1e-12)
}

func (s *EvaluateTestSuite) TestLabel() {
	s.Equal("Node 3", s.node.Label(2))
	s.node.Name = "C4/B2"
	s.Equal("C4/B2", s.node.Label(2))
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateTestSuite))
}
