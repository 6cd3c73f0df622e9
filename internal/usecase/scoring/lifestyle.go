package scoring

// LongDistanceNote is appended when the pair shares neither city nor
// country.
const LongDistanceNote = "Long distance; no shared city or country"

// Lifestyle categories collected during onboarding.
const (
	SocialIntrovert = "introvert"
	SocialAmbivert  = "ambivert"
	SocialExtrovert = "extrovert"

	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"

	PlanningPlanner     = "planner"
	PlanningFlexible    = "flexible"
	PlanningSpontaneous = "spontaneous"

	ConflictCollaborative = "collaborative"
	ConflictDirect        = "direct"
	ConflictAccommodating = "accommodating"
	ConflictAvoidant      = "avoidant"
)

// LifestyleScorer awards fixed points for equal categorical preferences,
// smaller points for compatible ones, and scores location in tiers:
// same city, then same country, then long distance.
type LifestyleScorer struct{}

func NewLifestyleScorer() *LifestyleScorer { return &LifestyleScorer{} }

func (s *LifestyleScorer) Dimension() Dimension { return DimLifestyle }

func (s *LifestyleScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimLifestyle}
	score := 30

	socialA, socialB := category(a, lifestyleSocial), category(b, lifestyleSocial)
	switch {
	case socialA != "" && socialA == socialB:
		score += 15
		res.Strengths = append(res.Strengths, "Matching social energy")
	case socialA == SocialAmbivert || socialB == SocialAmbivert:
		if socialA != "" && socialB != "" {
			score += 8
		}
	}

	activityA, activityB := category(a, lifestyleActivity), category(b, lifestyleActivity)
	switch {
	case activityA != "" && activityA == activityB:
		score += 12
		res.Strengths = append(res.Strengths, "Similar activity level")
	case adjacentActivity(activityA, activityB):
		score += 6
	}

	planA, planB := category(a, lifestylePlanning), category(b, lifestylePlanning)
	switch {
	case planA != "" && planA == planB:
		score += 10
	case planA == PlanningFlexible || planB == PlanningFlexible:
		if planA != "" && planB != "" {
			score += 5
		}
	}

	conflictA, conflictB := category(a, lifestyleConflict), category(b, lifestyleConflict)
	switch {
	case conflictA != "" && conflictA == conflictB:
		score += 13
		res.Strengths = append(res.Strengths, "Same approach to handling conflict")
	case compatibleConflict(conflictA, conflictB):
		score += 6
	}

	score += s.scoreLocation(a, b, &res)

	res.Score = clampScore(score)
	return res
}

func (s *LifestyleScorer) scoreLocation(a, b Subject, res *DimensionResult) int {
	if a.Profile == nil || b.Profile == nil {
		return 0
	}
	cityA, cityB := a.Profile.City, b.Profile.City
	if cityA != nil && cityB != nil && *cityA != "" && *cityA == *cityB {
		res.Strengths = append(res.Strengths, "Living in the same city")
		return 20
	}
	countryA, countryB := a.Profile.Country, b.Profile.Country
	if countryA != nil && countryB != nil && *countryA != "" && *countryA == *countryB {
		return 8
	}
	res.Considerations = append(res.Considerations, LongDistanceNote)
	return 0
}

type lifestyleCategory int

const (
	lifestyleSocial lifestyleCategory = iota
	lifestyleActivity
	lifestylePlanning
	lifestyleConflict
)

func category(s Subject, cat lifestyleCategory) string {
	if s.Profile == nil {
		return ""
	}
	var v *string
	switch cat {
	case lifestyleSocial:
		v = s.Profile.SocialPreference
	case lifestyleActivity:
		v = s.Profile.ActivityLevel
	case lifestylePlanning:
		v = s.Profile.PlanningStyle
	case lifestyleConflict:
		v = s.Profile.ConflictStyle
	}
	if v == nil {
		return ""
	}
	return *v
}

func adjacentActivity(x, y string) bool {
	if x == "" || y == "" {
		return false
	}
	rank := map[string]int{ActivityLow: 0, ActivityModerate: 1, ActivityHigh: 2}
	rx, okX := rank[x]
	ry, okY := rank[y]
	return okX && okY && diffAbs(rx, ry) == 1
}

// compatibleConflict treats collaborative and accommodating styles as
// workable with anything except mutual avoidance.
func compatibleConflict(x, y string) bool {
	if x == "" || y == "" {
		return false
	}
	if x == ConflictAvoidant && y == ConflictAvoidant {
		return false
	}
	return x == ConflictCollaborative || y == ConflictCollaborative ||
		x == ConflictAccommodating || y == ConflictAccommodating
}
