package scoring

import (
	"testing"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

func extractionSubject(id int, speed string, risk, persistence, creativity int) Subject {
	return Subject{
		Profile: &domain.Profile{UserID: id},
		Extraction: &domain.TraitExtraction{
			UserID:        id,
			DecisionSpeed: &domain.CategorySignal{Value: speed, Confidence: 0.9},
			RiskTolerance: &domain.TraitScore{Value: risk, Confidence: 0.9},
			Persistence:   &domain.TraitScore{Value: persistence, Confidence: 0.9},
			Creativity:    &domain.TraitScore{Value: creativity, Confidence: 0.9},
		},
	}
}

func TestBehavioralNeutralWithoutExtraction(t *testing.T) {
	scorer := NewBehavioralScorer()
	a := Subject{Profile: &domain.Profile{UserID: 1}}
	b := extractionSubject(2, domain.DecisionFast, 50, 50, 50)

	res := scorer.Score(a, b)

	if res.Score != NeutralScale {
		t.Errorf("score = %d, want neutral %d", res.Score, NeutralScale)
	}
	if !containsString(res.Considerations, LimitedBehavioralDataNote) {
		t.Errorf("considerations = %v, want %q", res.Considerations, LimitedBehavioralDataNote)
	}
}

func TestBehavioralFullSignalMatch(t *testing.T) {
	scorer := NewBehavioralScorer()
	a := extractionSubject(1, domain.DecisionDeliberate, 60, 70, 55)
	b := extractionSubject(2, domain.DecisionDeliberate, 60, 70, 55)

	res := scorer.Score(a, b)

	if res.Score != 100 {
		t.Errorf("score = %d, want 100 for identical extractions", res.Score)
	}
	if !containsString(res.Strengths, "Matching decision-making pace") {
		t.Errorf("strengths = %v, missing decision pace note", res.Strengths)
	}
}

func TestBehavioralDivergentSignals(t *testing.T) {
	scorer := NewBehavioralScorer()
	a := extractionSubject(1, domain.DecisionFast, 90, 20, 80)
	b := extractionSubject(2, domain.DecisionDeliberate, 10, 90, 10)

	res := scorer.Score(a, b)

	// 30 base + 0 speed + 4 risk + 5 persistence + 5 creativity.
	if res.Score != 44 {
		t.Errorf("score = %d, want 44", res.Score)
	}
}
