package scoring

import (
	"time"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

// Subject bundles every signal source the scorers may consult for one
// user. Any field except Profile may be absent; scorers degrade to
// neutral defaults instead of failing.
type Subject struct {
	Profile      *domain.Profile
	BirthDate    *time.Time
	Extraction   *domain.TraitExtraction
	Dealbreakers []domain.DealbreakerDeclaration
	PollVotes    map[string]string
	ContentSeen  []string
}

// UserID returns the subject's user id, 0 when no profile is attached.
func (s Subject) UserID() int {
	if s.Profile == nil {
		return 0
	}
	return s.Profile.UserID
}

// Completeness is the populated fraction of the subject's signal sources,
// feeding the match confidence value.
func (s Subject) Completeness() float64 {
	if s.Profile == nil {
		return 0
	}
	sources := 0
	if len(s.Profile.CoreValues) > 0 {
		sources++
	}
	if s.Profile.Openness != nil && s.Profile.Conscientiousness != nil &&
		s.Profile.Agreeableness != nil && s.Profile.Neuroticism != nil {
		sources++
	}
	if s.Profile.AttachmentStyle != nil {
		sources++
	}
	if s.Extraction != nil && s.Extraction.Completeness() > 0 {
		sources++
	}
	if len(s.Dealbreakers) > 0 {
		sources++
	}
	if len(s.PollVotes) > 0 {
		sources++
	}
	return float64(sources) / 6.0
}
