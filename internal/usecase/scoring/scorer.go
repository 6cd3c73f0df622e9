package scoring

import "math"

// Dimension identifies one facet of pairwise compatibility.
type Dimension string

const (
	DimPsychological Dimension = "psychological"
	DimBehavioral    Dimension = "behavioral"
	DimValues        Dimension = "values"
	DimInterests     Dimension = "interests"
	DimLifestyle     Dimension = "lifestyle"
	DimDealbreakers  Dimension = "dealbreakers"
	DimAstrological  Dimension = "astrological"
)

// DimensionResult is one scorer's verdict: an integer sub-score in
// [0,100] plus human-readable notes for the breakdown.
type DimensionResult struct {
	Dimension       Dimension
	Score           int
	Strengths       []string
	Considerations  []string
	DealBreakers    []string
	SharedInterests []string
}

// DimensionScorer computes one compatibility facet for a pair of
// subjects. Implementations are pure: no side effects, no errors, absent
// data degrades to neutral output.
type DimensionScorer interface {
	Dimension() Dimension
	Score(a, b Subject) DimensionResult
}

// traitCloseness awards up to maxPoints, scaled down linearly by the
// absolute difference of two 0-100 values.
func traitCloseness(x, y, maxPoints int) int {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	pts := float64(maxPoints) * (1 - float64(diff)/100)
	if pts < 0 {
		return 0
	}
	return int(math.Round(pts))
}
