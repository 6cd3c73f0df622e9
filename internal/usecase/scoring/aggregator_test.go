package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kindredhq/kindred-backend/internal/config"
	"github.com/kindredhq/kindred-backend/internal/domain"
)

func defaultWeights() config.Weights {
	return config.Weights{
		Psychological: 28,
		Behavioral:    12,
		Values:        20,
		Interests:     10,
		Lifestyle:     10,
		Dealbreakers:  15,
		Astrological:  5,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(defaultWeights(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// wellRoundedSubject builds a fully populated subject whose twin scores
// near the top of every dimension.
func wellRoundedSubject(userID int, name string) Subject {
	return Subject{
		Profile: &domain.Profile{
			UserID:            userID,
			DisplayName:       name,
			City:              strPtr("Berlin"),
			Country:           strPtr("Germany"),
			CoreValues:        []string{"honesty", "growth", "family"},
			AttachmentStyle:   strPtr(domain.AttachmentSecure),
			Openness:          intPtr(65),
			Conscientiousness: intPtr(70),
			Extraversion:      intPtr(60),
			Agreeableness:     intPtr(80),
			Neuroticism:       intPtr(30),
			WantsChildren:     boolPtr(true),
			SocialPreference:  strPtr(SocialAmbivert),
			ActivityLevel:     strPtr(ActivityModerate),
			PlanningStyle:     strPtr(PlanningFlexible),
			ConflictStyle:     strPtr(ConflictCollaborative),
		},
		Extraction: &domain.TraitExtraction{
			UserID:        userID,
			RiskTolerance: &domain.TraitScore{Value: 60, Confidence: 0.9},
			Persistence:   &domain.TraitScore{Value: 70, Confidence: 0.9},
			Creativity:    &domain.TraitScore{Value: 55, Confidence: 0.8},
			DecisionSpeed: &domain.CategorySignal{Value: domain.DecisionDeliberate, Confidence: 0.9},
			Values:        []string{"honesty"},
			Interests:     domain.WeightedSet{"hiking": 0.8, "cooking": 0.7},
			GamesPlayed:   12,
		},
		Dealbreakers: []domain.DealbreakerDeclaration{
			{UserID: userID, Trait: "smoking", Response: domain.ResponseDealbreaker},
		},
		PollVotes: map[string]string{
			"p1": "a", "p2": "a", "p3": "b", "p4": "a", "p5": "b", "p6": "a",
		},
	}
}

func TestNewEngineRejectsBadWeightSum(t *testing.T) {
	w := defaultWeights()
	w.Values = 25
	if _, err := NewEngine(w, nil); err == nil {
		t.Fatal("expected error for weights summing to 105, got nil")
	}
}

func TestScoreAlignedPairScoresHigh(t *testing.T) {
	engine := newTestEngine(t)
	a := wellRoundedSubject(1, "Ava")
	b := wellRoundedSubject(2, "Ben")

	res := engine.Score(a, b)

	if res.Overall < 80 {
		t.Errorf("overall = %d, want >= 80", res.Overall)
	}
	if res.Dimensions.Values < 85 {
		t.Errorf("values = %d, want >= 85", res.Dimensions.Values)
	}
	if res.Breakdown.HasDealbreakers() {
		t.Errorf("unexpected dealbreakers: %v", res.Breakdown.DealBreakers)
	}
	if res.Confidence != 1 {
		t.Errorf("confidence = %v, want 1 for fully populated subjects", res.Confidence)
	}
	if len(res.Breakdown.SharedInterests) != 2 {
		t.Errorf("shared interests = %v, want hiking and cooking", res.Breakdown.SharedInterests)
	}
}

func TestScoreChildrenMismatchVetoes(t *testing.T) {
	engine := newTestEngine(t)
	a := Subject{Profile: &domain.Profile{
		UserID:        1,
		DisplayName:   "Ava",
		CoreValues:    []string{"honesty", "growth", "family"},
		WantsChildren: boolPtr(true),
	}}
	b := Subject{Profile: &domain.Profile{
		UserID:        2,
		DisplayName:   "Ben",
		CoreValues:    []string{"honesty", "growth", "family"},
		WantsChildren: boolPtr(false),
	}}

	res := engine.Score(a, b)

	if res.Dimensions.Values > 20 {
		t.Errorf("values = %d, want <= 20 despite full value overlap", res.Dimensions.Values)
	}
	if !res.Breakdown.HasDealbreakers() {
		t.Fatal("expected children mismatch recorded as dealbreaker")
	}
	if res.Breakdown.DealBreakers[0] != ChildrenMismatchNote {
		t.Errorf("dealbreaker note = %q, want %q", res.Breakdown.DealBreakers[0], ChildrenMismatchNote)
	}
	if res.Overall > DealbreakerScoreCeiling {
		t.Errorf("overall = %d, want <= %d", res.Overall, DealbreakerScoreCeiling)
	}
}

func TestScoreDealbreakerCeilingOverridesStrongPair(t *testing.T) {
	engine := newTestEngine(t)
	a := wellRoundedSubject(1, "Ava")
	b := wellRoundedSubject(2, "Ben")
	// Ben declares the one trait Ava cannot accept.
	b.Dealbreakers = append(b.Dealbreakers, domain.DealbreakerDeclaration{
		UserID: 2, Trait: "smoking", Response: domain.ResponseMustHave,
	})

	res := engine.Score(a, b)

	if res.Overall != DealbreakerScoreCeiling {
		t.Errorf("overall = %d, want capped at %d", res.Overall, DealbreakerScoreCeiling)
	}
	if len(res.Breakdown.DealBreakers) != 1 {
		t.Fatalf("dealbreakers = %v, want exactly one entry", res.Breakdown.DealBreakers)
	}
	if !strings.Contains(res.Breakdown.DealBreakers[0], "Ava") ||
		!strings.Contains(res.Breakdown.DealBreakers[0], "smoking") {
		t.Errorf("dealbreaker note = %q, want holder name and trait", res.Breakdown.DealBreakers[0])
	}
}

func TestScoreSymmetric(t *testing.T) {
	engine := newTestEngine(t)
	a := wellRoundedSubject(1, "Ava")
	b := wellRoundedSubject(2, "Ben")
	b.Profile.City = strPtr("Hamburg")
	b.Profile.AttachmentStyle = strPtr(domain.AttachmentAnxious)
	b.Dealbreakers = append(b.Dealbreakers, domain.DealbreakerDeclaration{
		UserID: 2, Trait: "smoking", Response: domain.ResponseNiceToHave,
	})

	forward := engine.Score(a, b)
	reverse := engine.Score(b, a)

	if !reflect.DeepEqual(forward, reverse) {
		t.Errorf("Score(a,b) != Score(b,a)\nforward: %+v\nreverse: %+v", forward, reverse)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	engine := newTestEngine(t)

	empty := func(id int) Subject {
		return Subject{Profile: &domain.Profile{UserID: id, DisplayName: "x"}}
	}
	conflicted := wellRoundedSubject(3, "Cam")
	conflicted.Dealbreakers = []domain.DealbreakerDeclaration{
		{UserID: 3, Trait: "smoking", Response: domain.ResponseMustHave},
		{UserID: 3, Trait: "pets", Response: domain.ResponseDealbreaker},
	}

	pairs := []struct {
		name string
		a, b Subject
	}{
		{"empty profiles", empty(1), empty(2)},
		{"aligned", wellRoundedSubject(1, "Ava"), wellRoundedSubject(2, "Ben")},
		{"conflicted", wellRoundedSubject(1, "Ava"), conflicted},
	}

	for _, tc := range pairs {
		res := engine.Score(tc.a, tc.b)
		dims := []int{
			res.Overall,
			res.Dimensions.Psychological, res.Dimensions.Behavioral,
			res.Dimensions.Values, res.Dimensions.Interests,
			res.Dimensions.Lifestyle, res.Dimensions.Dealbreakers,
			res.Dimensions.Astrological,
		}
		for i, v := range dims {
			if v < 0 || v > 100 {
				t.Errorf("%s: score index %d = %d, out of [0,100]", tc.name, i, v)
			}
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("%s: confidence = %v, out of [0,1]", tc.name, res.Confidence)
		}
	}
}

func TestScoreNeutralAstroWithoutSystems(t *testing.T) {
	engine := newTestEngine(t)
	res := engine.Score(wellRoundedSubject(1, "Ava"), wellRoundedSubject(2, "Ben"))
	if res.Dimensions.Astrological != NeutralScale {
		t.Errorf("astrological = %d, want neutral %d with no systems configured", res.Dimensions.Astrological, NeutralScale)
	}
}
