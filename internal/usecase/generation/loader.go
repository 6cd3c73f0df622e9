package generation

import (
	"context"
	"fmt"

	"github.com/kindredhq/kindred-backend/internal/repository"
	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
)

// SubjectLoader assembles a scoring.Subject from the signal repositories.
// The profile is required; every other source is optional and its absence
// leaves the corresponding field empty.
type SubjectLoader struct {
	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	extractionRepo  repository.ExtractionRepository
	dealbreakerRepo repository.DealbreakerRepository
	pollRepo        repository.PollRepository
	contentRepo     repository.ContentRepository
}

func NewSubjectLoader(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	extractionRepo repository.ExtractionRepository,
	dealbreakerRepo repository.DealbreakerRepository,
	pollRepo repository.PollRepository,
	contentRepo repository.ContentRepository,
) *SubjectLoader {
	return &SubjectLoader{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		extractionRepo:  extractionRepo,
		dealbreakerRepo: dealbreakerRepo,
		pollRepo:        pollRepo,
		contentRepo:     contentRepo,
	}
}

func (l *SubjectLoader) Load(ctx context.Context, userID int) (scoring.Subject, error) {
	var subject scoring.Subject

	profile, err := l.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load profile for user %d: %w", userID, err)
	}
	subject.Profile = profile

	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load user %d: %w", userID, err)
	}
	if !user.BirthDate.IsZero() {
		birth := user.BirthDate
		subject.BirthDate = &birth
	}

	extraction, err := l.extractionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load extraction for user %d: %w", userID, err)
	}
	subject.Extraction = extraction

	dealbreakers, err := l.dealbreakerRepo.ListByUserID(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load dealbreakers for user %d: %w", userID, err)
	}
	subject.Dealbreakers = dealbreakers

	votes, err := l.pollRepo.GetVotes(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load poll votes for user %d: %w", userID, err)
	}
	subject.PollVotes = votes

	content, err := l.contentRepo.ListViewedContentIDs(ctx, userID)
	if err != nil {
		return subject, fmt.Errorf("load content views for user %d: %w", userID, err)
	}
	subject.ContentSeen = content

	return subject, nil
}
