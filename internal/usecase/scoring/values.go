package scoring

import (
	"fmt"
	"sort"
	"strings"
)

const (
	sharedValuePoints      = 12
	sharedValuePointsCap   = 36
	valueReinforcementPts  = 10
	childrenAlignedPoints  = 25
	childrenMismatchPoints = -45
	pollMinSharedSample    = 5
	pollAgreementMaxPoints = 14
)

// ChildrenMismatchNote is the dealbreaker entry recorded when one user
// wants children and the other explicitly does not.
const ChildrenMismatchNote = "Opposed intentions on having children"

// ValuesScorer measures declared core-value overlap, behavioral value
// reinforcement, children-intent alignment and community poll agreement.
// Absolute symmetric conflicts are surfaced as dealbreaker entries.
type ValuesScorer struct{}

func NewValuesScorer() *ValuesScorer { return &ValuesScorer{} }

func (s *ValuesScorer) Dimension() Dimension { return DimValues }

func (s *ValuesScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimValues}
	score := 25

	shared := sharedStrings(coreValues(a), coreValues(b))
	pts := len(shared) * sharedValuePoints
	if pts > sharedValuePointsCap {
		pts = sharedValuePointsCap
	}
	score += pts
	if len(shared) > 0 {
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Shared core values: %s", strings.Join(shared, ", ")))
	}

	// Behaviorally extracted values reinforce, they never replace the
	// declared set.
	if a.Extraction != nil && b.Extraction != nil {
		if len(sharedStrings(a.Extraction.Values, b.Extraction.Values)) > 0 {
			score += valueReinforcementPts
			res.Strengths = append(res.Strengths, "Value alignment confirmed by game behavior")
		}
	}

	score += s.scoreChildrenIntent(a, b, &res)
	score += s.scorePollAgreement(a, b, &res)

	res.Score = clampScore(score)
	return res
}

func (s *ValuesScorer) scoreChildrenIntent(a, b Subject, res *DimensionResult) int {
	if a.Profile == nil || b.Profile == nil ||
		a.Profile.WantsChildren == nil || b.Profile.WantsChildren == nil {
		return 0
	}
	wantsA, wantsB := *a.Profile.WantsChildren, *b.Profile.WantsChildren
	if wantsA == wantsB {
		if wantsA {
			res.Strengths = append(res.Strengths, "Both want children")
		} else {
			res.Strengths = append(res.Strengths, "Aligned on not having children")
		}
		return childrenAlignedPoints
	}
	res.DealBreakers = append(res.DealBreakers, ChildrenMismatchNote)
	return childrenMismatchPoints
}

func (s *ValuesScorer) scorePollAgreement(a, b Subject, res *DimensionResult) int {
	if len(a.PollVotes) == 0 || len(b.PollVotes) == 0 {
		return 0
	}
	shared, agreed := 0, 0
	for pollID, choiceA := range a.PollVotes {
		choiceB, ok := b.PollVotes[pollID]
		if !ok {
			continue
		}
		shared++
		if choiceA == choiceB {
			agreed++
		}
	}
	if shared < pollMinSharedSample {
		return 0
	}
	rate := float64(agreed) / float64(shared)
	if rate >= 0.8 {
		res.Strengths = append(res.Strengths, "High agreement on community polls")
	}
	return int(rate * pollAgreementMaxPoints)
}

func coreValues(s Subject) []string {
	if s.Profile == nil {
		return nil
	}
	return s.Profile.CoreValues
}

// sharedStrings returns the case-insensitive intersection, sorted for
// stable output across evaluation orders.
func sharedStrings(xs, ys []string) []string {
	set := make(map[string]string, len(xs))
	for _, x := range xs {
		set[strings.ToLower(strings.TrimSpace(x))] = strings.TrimSpace(x)
	}
	seen := make(map[string]bool)
	var shared []string
	for _, y := range ys {
		key := strings.ToLower(strings.TrimSpace(y))
		if orig, ok := set[key]; ok && !seen[key] {
			seen[key] = true
			shared = append(shared, orig)
		}
	}
	sort.Strings(shared)
	return shared
}
