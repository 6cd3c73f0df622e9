package scoring

// LimitedBehavioralDataNote is appended when either user lacks extraction
// data and the scorer falls back to neutral.
const LimitedBehavioralDataNote = "Limited behavioral data available"

// BehavioralScorer works exclusively from game-validated extractions:
// decision speed category match, continuous risk tolerance closeness and
// persistence/creativity similarity. With either extraction absent it
// returns neutral 50 and a note instead of failing.
type BehavioralScorer struct{}

func NewBehavioralScorer() *BehavioralScorer { return &BehavioralScorer{} }

func (s *BehavioralScorer) Dimension() Dimension { return DimBehavioral }

func (s *BehavioralScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimBehavioral}

	if a.Extraction == nil || b.Extraction == nil {
		res.Score = NeutralScale
		res.Considerations = append(res.Considerations, LimitedBehavioralDataNote)
		return res
	}

	score := 30

	speedA, speedB := a.Extraction.DecisionSpeed, b.Extraction.DecisionSpeed
	if speedA != nil && speedB != nil && speedA.Value == speedB.Value {
		score += 20
		res.Strengths = append(res.Strengths, "Matching decision-making pace")
	}

	score += traitCloseness(
		extractionValue(a.Extraction.RiskTolerance),
		extractionValue(b.Extraction.RiskTolerance), 20)

	persistencePts := traitCloseness(
		extractionValue(a.Extraction.Persistence),
		extractionValue(b.Extraction.Persistence), 15)
	score += persistencePts
	if persistencePts >= 13 {
		res.Strengths = append(res.Strengths, "Comparable persistence under pressure")
	}

	score += traitCloseness(
		extractionValue(a.Extraction.Creativity),
		extractionValue(b.Extraction.Creativity), 15)

	res.Score = clampScore(score)
	return res
}
