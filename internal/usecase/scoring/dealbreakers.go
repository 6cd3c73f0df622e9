package scoring

import (
	"fmt"
	"sort"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

const dealbreakerViolationPenalty = 60

// DealbreakerScorer runs the symmetric hard-filter check: every trait one
// user marked as a dealbreaker is tested against the counterpart's
// declared traits, in both directions. Each violation drives the score
// toward zero and records which side's dealbreaker was hit. The score
// participates in the weighted sum like any other dimension; the overall
// veto is applied by the aggregator from the recorded entries.
type DealbreakerScorer struct{}

func NewDealbreakerScorer() *DealbreakerScorer { return &DealbreakerScorer{} }

func (s *DealbreakerScorer) Dimension() Dimension { return DimDealbreakers }

func (s *DealbreakerScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimDealbreakers}
	score := 100

	violations := append(
		violationsAgainst(a, b),
		violationsAgainst(b, a)...,
	)
	sort.Strings(violations)

	score -= len(violations) * dealbreakerViolationPenalty
	res.DealBreakers = violations
	if len(violations) == 0 {
		res.Strengths = append(res.Strengths, "No dealbreaker conflicts")
	}

	res.Score = clampScore(score)
	return res
}

// violationsAgainst lists holder's dealbreakers that the other user has
// declared as a present trait (must_have or nice_to_have).
func violationsAgainst(holder, other Subject) []string {
	if len(holder.Dealbreakers) == 0 || len(other.Dealbreakers) == 0 {
		return nil
	}
	declared := make(map[string]bool, len(other.Dealbreakers))
	for _, d := range other.Dealbreakers {
		if d.Response == domain.ResponseMustHave || d.Response == domain.ResponseNiceToHave {
			declared[d.Trait] = true
		}
	}
	var out []string
	for _, d := range holder.Dealbreakers {
		if d.Response == domain.ResponseDealbreaker && declared[d.Trait] {
			out = append(out, fmt.Sprintf("%s's dealbreaker violated: %s", displayName(holder), d.Trait))
		}
	}
	return out
}

func displayName(s Subject) string {
	if s.Profile == nil || s.Profile.DisplayName == "" {
		return fmt.Sprintf("user %d", s.UserID())
	}
	return s.Profile.DisplayName
}
