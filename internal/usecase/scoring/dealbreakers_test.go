package scoring

import (
	"strings"
	"testing"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

func declSubject(id int, name string, decls ...domain.DealbreakerDeclaration) Subject {
	return Subject{
		Profile:      &domain.Profile{UserID: id, DisplayName: name},
		Dealbreakers: decls,
	}
}

func decl(trait, response string) domain.DealbreakerDeclaration {
	return domain.DealbreakerDeclaration{Trait: trait, Response: response}
}

func TestDealbreakersNoDeclarations(t *testing.T) {
	scorer := NewDealbreakerScorer()
	res := scorer.Score(declSubject(1, "Ava"), declSubject(2, "Ben"))

	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if len(res.DealBreakers) != 0 {
		t.Errorf("dealbreakers = %v, want none", res.DealBreakers)
	}
}

func TestDealbreakersDirectionalViolation(t *testing.T) {
	scorer := NewDealbreakerScorer()
	a := declSubject(1, "Ava", decl("smoking", domain.ResponseDealbreaker))
	b := declSubject(2, "Ben", decl("smoking", domain.ResponseMustHave))

	res := scorer.Score(a, b)

	if res.Score != 40 {
		t.Errorf("score = %d, want 40 after one violation", res.Score)
	}
	if len(res.DealBreakers) != 1 {
		t.Fatalf("dealbreakers = %v, want one entry", res.DealBreakers)
	}
	if !strings.Contains(res.DealBreakers[0], "Ava") {
		t.Errorf("entry = %q, want the holder named", res.DealBreakers[0])
	}
}

func TestDealbreakersBothDirectionsChecked(t *testing.T) {
	scorer := NewDealbreakerScorer()
	a := declSubject(1, "Ava",
		decl("smoking", domain.ResponseDealbreaker),
		decl("pets", domain.ResponseNiceToHave))
	b := declSubject(2, "Ben",
		decl("pets", domain.ResponseDealbreaker),
		decl("smoking", domain.ResponseMustHave))

	res := scorer.Score(a, b)

	if res.Score != 0 {
		t.Errorf("score = %d, want 0 after two violations", res.Score)
	}
	if len(res.DealBreakers) != 2 {
		t.Fatalf("dealbreakers = %v, want two entries", res.DealBreakers)
	}
}

func TestDealbreakersNeutralResponseNotATrait(t *testing.T) {
	scorer := NewDealbreakerScorer()
	a := declSubject(1, "Ava", decl("smoking", domain.ResponseDealbreaker))
	b := declSubject(2, "Ben", decl("smoking", domain.ResponseNeutral))

	res := scorer.Score(a, b)

	if res.Score != 100 {
		t.Errorf("score = %d, want 100; neutral responses are not declared traits", res.Score)
	}
	if len(res.DealBreakers) != 0 {
		t.Errorf("dealbreakers = %v, want none", res.DealBreakers)
	}
}
