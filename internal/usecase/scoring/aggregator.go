package scoring

import (
	"fmt"
	"math"

	"github.com/kindredhq/kindred-backend/internal/config"
	"github.com/kindredhq/kindred-backend/internal/domain"
)

// DealbreakerScoreCeiling caps the overall score whenever the merged
// breakdown carries a confirmed dealbreaker conflict. A conflicted pair
// therefore always lands below any sane match threshold without being
// zeroed outright.
const DealbreakerScoreCeiling = 35

// Result is the aggregator's verdict for one pair.
type Result struct {
	Overall    int
	Dimensions domain.DimensionScores
	Confidence float64
	Breakdown  domain.Breakdown
}

// Engine runs every dimension scorer for a pair and folds the sub-scores
// into one overall score via the configured weight table.
type Engine struct {
	weights       config.Weights
	psychological DimensionScorer
	behavioral    DimensionScorer
	values        DimensionScorer
	interests     DimensionScorer
	lifestyle     DimensionScorer
	dealbreakers  DimensionScorer
	astrological  DimensionScorer
}

// NewEngine builds the scoring engine. The weight table must sum to 100;
// astroSystems may be empty, in which case the astrological dimension
// stays at its neutral default.
func NewEngine(weights config.Weights, astroSystems []AstroSystem) (*Engine, error) {
	if sum := weights.Sum(); sum != 100 {
		return nil, fmt.Errorf("dimension weights must sum to 100, got %d", sum)
	}
	return &Engine{
		weights:       weights,
		psychological: NewPsychologicalScorer(),
		behavioral:    NewBehavioralScorer(),
		values:        NewValuesScorer(),
		interests:     NewInterestsScorer(),
		lifestyle:     NewLifestyleScorer(),
		dealbreakers:  NewDealbreakerScorer(),
		astrological:  NewAstrologicalScorer(astroSystems),
	}, nil
}

// Score computes the full compatibility verdict for a pair. Pure and
// symmetric: the pair is canonicalized by user id before scoring, so
// Score(a,b) and Score(b,a) are identical.
func (e *Engine) Score(a, b Subject) Result {
	if a.UserID() > b.UserID() {
		a, b = b, a
	}

	results := []DimensionResult{
		e.psychological.Score(a, b),
		e.behavioral.Score(a, b),
		e.values.Score(a, b),
		e.interests.Score(a, b),
		e.lifestyle.Score(a, b),
		e.dealbreakers.Score(a, b),
		e.astrological.Score(a, b),
	}

	var res Result
	weighted := 0
	for _, r := range results {
		w := e.weightFor(r.Dimension)
		weighted += r.Score * w
		res.Breakdown.Strengths = appendDedup(res.Breakdown.Strengths, r.Strengths)
		res.Breakdown.Considerations = appendDedup(res.Breakdown.Considerations, r.Considerations)
		res.Breakdown.DealBreakers = appendDedup(res.Breakdown.DealBreakers, r.DealBreakers)
		res.Breakdown.SharedInterests = appendDedup(res.Breakdown.SharedInterests, r.SharedInterests)

		switch r.Dimension {
		case DimPsychological:
			res.Dimensions.Psychological = r.Score
		case DimBehavioral:
			res.Dimensions.Behavioral = r.Score
		case DimValues:
			res.Dimensions.Values = r.Score
		case DimInterests:
			res.Dimensions.Interests = r.Score
		case DimLifestyle:
			res.Dimensions.Lifestyle = r.Score
		case DimDealbreakers:
			res.Dimensions.Dealbreakers = r.Score
		case DimAstrological:
			res.Dimensions.Astrological = r.Score
		}
	}

	res.Overall = clampScore(int(math.Round(float64(weighted) / 100)))
	if res.Breakdown.HasDealbreakers() && res.Overall > DealbreakerScoreCeiling {
		res.Overall = DealbreakerScoreCeiling
	}

	res.Confidence = (a.Completeness() + b.Completeness()) / 2
	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}

	return res
}

func (e *Engine) weightFor(d Dimension) int {
	switch d {
	case DimPsychological:
		return e.weights.Psychological
	case DimBehavioral:
		return e.weights.Behavioral
	case DimValues:
		return e.weights.Values
	case DimInterests:
		return e.weights.Interests
	case DimLifestyle:
		return e.weights.Lifestyle
	case DimDealbreakers:
		return e.weights.Dealbreakers
	case DimAstrological:
		return e.weights.Astrological
	default:
		return 0
	}
}

func appendDedup(dst, src []string) []string {
	for _, s := range src {
		dup := false
		for _, existing := range dst {
			if existing == s {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}
