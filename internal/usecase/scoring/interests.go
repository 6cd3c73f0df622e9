package scoring

import "sort"

const (
	sharedInterestMinStrength = 0.6
	sharedInterestPoints      = 12
	sharedContentPoints       = 3
	sharedContentPointsCap    = 12
)

// InterestsScorer intersects the weighted interest vectors from both
// extractions and adds a smaller bonus for overlapping consumed content.
// The shared interest labels are returned for downstream display.
type InterestsScorer struct{}

func NewInterestsScorer() *InterestsScorer { return &InterestsScorer{} }

func (s *InterestsScorer) Dimension() Dimension { return DimInterests }

func (s *InterestsScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimInterests}
	score := 40

	if a.Extraction != nil && b.Extraction != nil {
		for interest, weightA := range a.Extraction.Interests {
			weightB, ok := b.Extraction.Interests[interest]
			if !ok {
				continue
			}
			if (weightA+weightB)/2 > sharedInterestMinStrength {
				res.SharedInterests = append(res.SharedInterests, interest)
			}
		}
		sort.Strings(res.SharedInterests)
		score += len(res.SharedInterests) * sharedInterestPoints
	}

	contentPts := len(sharedStrings(a.ContentSeen, b.ContentSeen)) * sharedContentPoints
	if contentPts > sharedContentPointsCap {
		contentPts = sharedContentPointsCap
	}
	score += contentPts
	if contentPts > 0 {
		res.Strengths = append(res.Strengths, "Overlapping taste in community content")
	}

	res.Score = clampScore(score)
	return res
}
