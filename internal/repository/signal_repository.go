package repository

import (
	"context"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

// ExtractionRepository reads behaviorally validated trait data. A missing
// extraction is reported as (nil, nil), not an error: absence of signal is
// an expected state.
type ExtractionRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.TraitExtraction, error)
}

type DealbreakerRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]domain.DealbreakerDeclaration, error)
}

type PollRepository interface {
	// GetVotes returns poll_id -> choice for the user.
	GetVotes(ctx context.Context, userID int) (map[string]string, error)
}

type ContentRepository interface {
	ListViewedContentIDs(ctx context.Context, userID int) ([]string, error)
}

type BlockRepository interface {
	// ListInvolvedUserIDs returns every user the given user has blocked or
	// been blocked by.
	ListInvolvedUserIDs(ctx context.Context, userID int) ([]int, error)
}
