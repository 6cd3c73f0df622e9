package scoring

import (
	"testing"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

func valuesSubject(id int, values ...string) Subject {
	return Subject{Profile: &domain.Profile{UserID: id, CoreValues: values}}
}

func TestValuesSharedCoreValues(t *testing.T) {
	scorer := NewValuesScorer()

	tests := []struct {
		name string
		a, b Subject
		want int
	}{
		{"no overlap", valuesSubject(1, "honesty"), valuesSubject(2, "adventure"), 25},
		{"one shared", valuesSubject(1, "honesty", "growth"), valuesSubject(2, "honesty"), 37},
		{"case insensitive", valuesSubject(1, "Honesty"), valuesSubject(2, "honesty "), 37},
		{"capped at three", valuesSubject(1, "a", "b", "c", "d", "e"), valuesSubject(2, "a", "b", "c", "d", "e"), 61},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scorer.Score(tc.a, tc.b).Score; got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValuesChildrenIntent(t *testing.T) {
	scorer := NewValuesScorer()

	aligned := valuesSubject(1)
	aligned.Profile.WantsChildren = boolPtr(false)
	other := valuesSubject(2)
	other.Profile.WantsChildren = boolPtr(false)

	res := scorer.Score(aligned, other)
	if res.Score != 50 {
		t.Errorf("aligned score = %d, want 50", res.Score)
	}
	if res.DealBreakers != nil {
		t.Errorf("aligned pair recorded dealbreakers: %v", res.DealBreakers)
	}

	opposed := valuesSubject(3)
	opposed.Profile.WantsChildren = boolPtr(true)
	res = scorer.Score(opposed, other)
	if res.Score != 0 {
		t.Errorf("opposed score = %d, want 0 after the mismatch penalty", res.Score)
	}
	if !containsString(res.DealBreakers, ChildrenMismatchNote) {
		t.Errorf("dealbreakers = %v, want %q", res.DealBreakers, ChildrenMismatchNote)
	}

	// Undeclared intent on either side is not a conflict.
	res = scorer.Score(valuesSubject(4), other)
	if res.DealBreakers != nil {
		t.Errorf("undeclared intent recorded dealbreakers: %v", res.DealBreakers)
	}
}

func TestValuesPollAgreement(t *testing.T) {
	scorer := NewValuesScorer()

	votes := func(choices ...string) map[string]string {
		m := make(map[string]string, len(choices))
		for i, c := range choices {
			m[string(rune('a'+i))] = c
		}
		return m
	}

	a := valuesSubject(1)
	b := valuesSubject(2)

	// Below the five-poll sample floor nothing is awarded.
	a.PollVotes = votes("x", "x", "x", "x")
	b.PollVotes = votes("x", "x", "x", "x")
	if got := scorer.Score(a, b).Score; got != 25 {
		t.Errorf("score = %d, want 25 with too small a shared sample", got)
	}

	// Five shared polls, full agreement.
	a.PollVotes = votes("x", "x", "x", "x", "x")
	b.PollVotes = votes("x", "x", "x", "x", "x")
	if got := scorer.Score(a, b).Score; got != 39 {
		t.Errorf("score = %d, want 39 with full poll agreement", got)
	}

	// Same sample, partial agreement.
	b.PollVotes = votes("x", "x", "y", "y", "y")
	if got := scorer.Score(a, b).Score; got != 30 {
		t.Errorf("score = %d, want 30 with 2/5 agreement", got)
	}
}

func TestValuesExtractionReinforcement(t *testing.T) {
	scorer := NewValuesScorer()
	a := valuesSubject(1, "honesty")
	b := valuesSubject(2, "honesty")
	a.Extraction = &domain.TraitExtraction{Values: []string{"honesty"}}
	b.Extraction = &domain.TraitExtraction{Values: []string{"honesty"}}

	res := scorer.Score(a, b)
	// 25 base + 12 shared + 10 reinforcement.
	if res.Score != 47 {
		t.Errorf("score = %d, want 47", res.Score)
	}
	if !containsString(res.Strengths, "Value alignment confirmed by game behavior") {
		t.Errorf("strengths = %v, missing reinforcement note", res.Strengths)
	}
}
