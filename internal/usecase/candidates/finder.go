package candidates

import (
	"context"
	"fmt"

	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
)

// Finder assembles the pool of eligible counterpart users for one user:
// active, not self, not already paired, not blocked in either direction,
// and inside the user's hard preference filters. It does not score.
type Finder struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
	blockRepo   repository.BlockRepository
}

func NewFinder(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
	blockRepo repository.BlockRepository,
) *Finder {
	return &Finder{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		blockRepo:   blockRepo,
	}
}

// Find returns the eligible candidate user ids for the given user, in no
// particular order.
func (f *Finder) Find(ctx context.Context, userID int) ([]int, error) {
	profile, err := f.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile for user %d: %w", userID, err)
	}

	partnerIDs, err := f.matchRepo.ListPartnerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matched partners for user %d: %w", userID, err)
	}
	blockedIDs, err := f.blockRepo.ListInvolvedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list blocks for user %d: %w", userID, err)
	}

	excluded := make(map[int]bool, len(partnerIDs)+len(blockedIDs)+1)
	excluded[userID] = true
	for _, id := range partnerIDs {
		excluded[id] = true
	}
	for _, id := range blockedIDs {
		excluded[id] = true
	}

	pool, err := f.profileRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active profiles: %w", err)
	}

	var out []int
	for _, candidate := range pool {
		if excluded[candidate.UserID] {
			continue
		}
		ok, err := f.passesHardFilters(ctx, profile, candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, candidate.UserID)
		}
	}
	return out, nil
}

func (f *Finder) passesHardFilters(ctx context.Context, seeker, candidate *domain.Profile) (bool, error) {
	if seeker.RequireSameCity {
		if seeker.City == nil || candidate.City == nil || *seeker.City != *candidate.City {
			return false, nil
		}
	}

	if seeker.PrefMinAge == nil && seeker.PrefMaxAge == nil {
		return true, nil
	}

	user, err := f.userRepo.GetByID(ctx, candidate.UserID)
	if err != nil {
		return false, fmt.Errorf("get user %d: %w", candidate.UserID, err)
	}
	age := user.Age()
	if seeker.PrefMinAge != nil && age < *seeker.PrefMinAge {
		return false, nil
	}
	if seeker.PrefMaxAge != nil && age > *seeker.PrefMaxAge {
		return false, nil
	}
	return true, nil
}
