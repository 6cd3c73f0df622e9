package scoring

import "math"

// AstroSystem is one external astrology calculator. Compare returns a
// 0-100 sub-score, or ok=false when the system cannot produce one (e.g.
// missing birth data). A system never vetoes and never fails.
type AstroSystem interface {
	Name() string
	Compare(a, b Subject) (score int, ok bool)
}

// Per-system blend weights. Unknown systems get the default.
var astroSystemWeights = map[string]int{
	"western":    50,
	"chinese":    30,
	"numerology": 20,
}

const astroDefaultWeight = 20

// AstrologicalScorer blends the available systems' sub-scores by fixed
// per-system weights, excluding unavailable ones, and falls back to
// neutral when none respond.
type AstrologicalScorer struct {
	systems []AstroSystem
}

func NewAstrologicalScorer(systems []AstroSystem) *AstrologicalScorer {
	return &AstrologicalScorer{systems: systems}
}

func (s *AstrologicalScorer) Dimension() Dimension { return DimAstrological }

func (s *AstrologicalScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimAstrological}

	weighted, totalWeight := 0, 0
	for _, sys := range s.systems {
		score, ok := sys.Compare(a, b)
		if !ok {
			continue
		}
		w, known := astroSystemWeights[sys.Name()]
		if !known {
			w = astroDefaultWeight
		}
		weighted += clampScore(score) * w
		totalWeight += w
	}

	if totalWeight == 0 {
		res.Score = NeutralScale
		return res
	}

	res.Score = clampScore(int(math.Round(float64(weighted) / float64(totalWeight))))
	if res.Score >= 80 {
		res.Strengths = append(res.Strengths, "Strong astrological alignment")
	}
	return res
}
