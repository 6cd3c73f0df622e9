package scoring

import (
	"testing"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

// stubSystem is a canned AstroSystem for blend testing.
type stubSystem struct {
	name  string
	score int
	ok    bool
}

func (s stubSystem) Name() string                     { return s.name }
func (s stubSystem) Compare(a, b Subject) (int, bool) { return s.score, s.ok }

func astroSubject(id int) Subject {
	return Subject{Profile: &domain.Profile{UserID: id}}
}

func TestAstrologicalBlendsByWeight(t *testing.T) {
	scorer := NewAstrologicalScorer([]AstroSystem{
		stubSystem{name: "western", score: 80, ok: true},
		stubSystem{name: "chinese", score: 60, ok: true},
		stubSystem{name: "numerology", score: 50, ok: true},
	})

	res := scorer.Score(astroSubject(1), astroSubject(2))

	// (80*50 + 60*30 + 50*20) / 100 = 68.
	if res.Score != 68 {
		t.Errorf("score = %d, want 68", res.Score)
	}
}

func TestAstrologicalSkipsUnavailableSystems(t *testing.T) {
	scorer := NewAstrologicalScorer([]AstroSystem{
		stubSystem{name: "western", score: 90, ok: true},
		stubSystem{name: "chinese", ok: false},
	})

	res := scorer.Score(astroSubject(1), astroSubject(2))

	if res.Score != 90 {
		t.Errorf("score = %d, want 90 from the single available system", res.Score)
	}
	if !containsString(res.Strengths, "Strong astrological alignment") {
		t.Errorf("strengths = %v, missing alignment note", res.Strengths)
	}
}

func TestAstrologicalNeutralWhenNoSystemResponds(t *testing.T) {
	for _, systems := range [][]AstroSystem{
		nil,
		{stubSystem{name: "western", ok: false}},
	} {
		scorer := NewAstrologicalScorer(systems)
		if got := scorer.Score(astroSubject(1), astroSubject(2)).Score; got != NeutralScale {
			t.Errorf("score = %d, want neutral %d", got, NeutralScale)
		}
	}
}

func TestAstrologicalUnknownSystemGetsDefaultWeight(t *testing.T) {
	scorer := NewAstrologicalScorer([]AstroSystem{
		stubSystem{name: "western", score: 100, ok: true},
		stubSystem{name: "vedic", score: 0, ok: true},
	})

	res := scorer.Score(astroSubject(1), astroSubject(2))

	// 100*50 / (50+20) = 71.4, rounded.
	if res.Score != 71 {
		t.Errorf("score = %d, want 71", res.Score)
	}
}
