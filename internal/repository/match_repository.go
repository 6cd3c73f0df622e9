package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred-backend/internal/domain"
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match unless a row for the unordered pair
	// already exists. Returns false with no error when the pair was already
	// matched; a duplicate insert race is a benign no-op.
	CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error)
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByUsers(ctx context.Context, userAID, userBID int) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error)
	// ListPartnerIDs returns every user already paired with the given user,
	// regardless of match status.
	ListPartnerIDs(ctx context.Context, userID int) ([]int, error)
	// CountCreatedSince counts matches created for the user after the given
	// instant, used for rolling-window quota enforcement.
	CountCreatedSince(ctx context.Context, userID int, since time.Time) (int, error)
	UpdateExplanation(ctx context.Context, id int, explanation string) error
}

type RunRepository interface {
	Create(ctx context.Context, run *domain.MatchGenerationRun) error
	Finalize(ctx context.Context, run *domain.MatchGenerationRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchGenerationRun, error)
	List(ctx context.Context, limit, offset int) ([]*domain.MatchGenerationRun, error)
}
