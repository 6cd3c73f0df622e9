package generation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred-backend/internal/config"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
	"github.com/kindredhq/kindred-backend/internal/usecase/candidates"
	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	quotaWindow = 7 * 24 * time.Hour
	runLockKey  = "matchgen:run-lock"
	runLockTTL  = 2 * time.Hour
)

// Locker is an advisory lock so overlapping batch triggers cannot
// double-run. Optional: a nil Locker disables the guard.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Explainer generates an optional human-readable explanation for a newly
// created match. Optional capability: failures are logged, never fatal.
type Explainer interface {
	ExplainMatch(ctx context.Context, a, b *domain.Profile, breakdown domain.Breakdown, score int) (string, error)
}

// Generator is the batch orchestrator: for every active user with
// remaining weekly quota it scores all eligible candidates, drops vetoed
// and below-threshold pairs, ranks the rest and persists the top ones as
// pending matches, recording run-level telemetry throughout.
type Generator struct {
	cfg       config.MatchingConfig
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
	runRepo   repository.RunRepository
	finder    *candidates.Finder
	loader    *SubjectLoader
	engine    *scoring.Engine
	locker    Locker
	explainer Explainer
	log       *zap.Logger
	now       func() time.Time
}

func NewGenerator(
	cfg config.MatchingConfig,
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	runRepo repository.RunRepository,
	finder *candidates.Finder,
	loader *SubjectLoader,
	engine *scoring.Engine,
	locker Locker,
	explainer Explainer,
	log *zap.Logger,
) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		cfg:       cfg,
		userRepo:  userRepo,
		matchRepo: matchRepo,
		runRepo:   runRepo,
		finder:    finder,
		loader:    loader,
		engine:    engine,
		locker:    locker,
		explainer: explainer,
		log:       log,
		now:       time.Now,
	}
}

// runState collects counters shared across the per-user workers.
type runState struct {
	mu                sync.Mutex
	usersEvaluated    int
	matchesCreated    int
	candidatesSkipped int
	errors            domain.RunErrorList
}

func (s *runState) recordError(userID int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, domain.RunError{UserID: userID, Message: err.Error()})
}

// Run executes one batch generation pass. Per-user failures are recorded
// on the run and do not abort the batch; only a startup failure (unable
// to enumerate active users) marks the run failed.
func (g *Generator) Run(ctx context.Context) (*domain.MatchGenerationRun, error) {
	if g.locker != nil {
		acquired, err := g.locker.Acquire(ctx, runLockKey, runLockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !acquired {
			return nil, domain.ErrRunInProgress
		}
		defer func() {
			if err := g.locker.Release(context.WithoutCancel(ctx), runLockKey); err != nil {
				g.log.Warn("release run lock", zap.Error(err))
			}
		}()
	}

	run := &domain.MatchGenerationRun{
		ID:               uuid.New(),
		Status:           domain.RunStatusRunning,
		AlgorithmVersion: g.cfg.AlgorithmVersion,
		StartedAt:        g.now().UTC(),
	}
	if err := g.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create generation run: %w", err)
	}
	g.log.Info("generation run started",
		zap.String("run_id", run.ID.String()),
		zap.String("algorithm_version", run.AlgorithmVersion))

	userIDs, err := g.userRepo.ListActiveIDs(ctx)
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Errors = append(run.Errors, domain.RunError{Message: fmt.Sprintf("list active users: %v", err)})
		g.finalize(ctx, run)
		return run, fmt.Errorf("list active users: %w", err)
	}

	state := &runState{}
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.cfg.Workers)

	cancelled := false
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		userID := userID
		grp.Go(func() error {
			g.processUser(gctx, run.ID, userID, state)
			return nil
		})
	}
	_ = grp.Wait()

	run.UsersEvaluated = state.usersEvaluated
	run.MatchesCreated = state.matchesCreated
	run.CandidatesSkipped = state.candidatesSkipped
	run.Errors = state.errors
	run.Status = domain.RunStatusCompleted
	if len(state.errors) > 0 || cancelled {
		run.Status = domain.RunStatusPartial
	}

	g.finalize(ctx, run)
	g.log.Info("generation run finished",
		zap.String("run_id", run.ID.String()),
		zap.String("status", run.Status),
		zap.Int("users_evaluated", run.UsersEvaluated),
		zap.Int("matches_created", run.MatchesCreated),
		zap.Int("errors", len(run.Errors)))
	return run, nil
}

func (g *Generator) finalize(ctx context.Context, run *domain.MatchGenerationRun) {
	finished := g.now().UTC()
	run.FinishedAt = &finished
	if err := g.runRepo.Finalize(context.WithoutCancel(ctx), run); err != nil {
		g.log.Error("finalize generation run",
			zap.String("run_id", run.ID.String()), zap.Error(err))
	}
}

// scoredCandidate pairs a candidate with its verdict for ranking.
type scoredCandidate struct {
	userID int
	result scoring.Result
}

func (g *Generator) processUser(ctx context.Context, runID uuid.UUID, userID int, state *runState) {
	quota, err := g.remainingQuota(ctx, userID)
	if err != nil {
		state.recordError(userID, err)
		return
	}
	if quota <= 0 {
		state.mu.Lock()
		state.usersEvaluated++
		state.mu.Unlock()
		return
	}

	candidateIDs, err := g.finder.Find(ctx, userID)
	if err != nil {
		state.recordError(userID, err)
		return
	}

	subject, err := g.loader.Load(ctx, userID)
	if err != nil {
		state.recordError(userID, err)
		return
	}

	var ranked []scoredCandidate
	skipped := 0
	for _, candidateID := range candidateIDs {
		counterpart, err := g.loader.Load(ctx, candidateID)
		if err != nil {
			// A malformed candidate never aborts the user's pipeline.
			g.log.Warn("skip candidate",
				zap.Int("user_id", userID),
				zap.Int("candidate_id", candidateID),
				zap.Error(err))
			skipped++
			continue
		}

		result := g.engine.Score(subject, counterpart)
		if result.Breakdown.HasDealbreakers() || result.Overall < g.cfg.MinScore {
			continue
		}
		ranked = append(ranked, scoredCandidate{userID: candidateID, result: result})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].result.Overall != ranked[j].result.Overall {
			return ranked[i].result.Overall > ranked[j].result.Overall
		}
		return ranked[i].userID < ranked[j].userID
	})
	if len(ranked) > quota {
		ranked = ranked[:quota]
	}

	created := 0
	for _, sc := range ranked {
		// The candidate receives this match too; respect their window.
		candidateQuota, err := g.remainingQuota(ctx, sc.userID)
		if err != nil {
			state.recordError(userID, err)
			continue
		}
		if candidateQuota <= 0 {
			continue
		}
		match := &domain.Match{
			UserAID:          userID,
			UserBID:          sc.userID,
			Score:            sc.result.Overall,
			Dimensions:       sc.result.Dimensions,
			Confidence:       sc.result.Confidence,
			Breakdown:        sc.result.Breakdown,
			Status:           domain.MatchStatusPending,
			AlgorithmVersion: g.cfg.AlgorithmVersion,
			GenerationRunID:  runID,
		}
		inserted, err := g.matchRepo.CreateIfAbsent(ctx, match)
		if err != nil {
			state.recordError(userID, fmt.Errorf("persist match with user %d: %w", sc.userID, err))
			continue
		}
		if !inserted {
			// Another worker scored the pair from the opposite perspective
			// first; the uniqueness invariant makes this a no-op.
			continue
		}
		created++
		g.enrich(ctx, match, subject, sc)
	}

	state.mu.Lock()
	state.usersEvaluated++
	state.matchesCreated += created
	state.candidatesSkipped += skipped
	state.mu.Unlock()
}

func (g *Generator) enrich(ctx context.Context, match *domain.Match, subject scoring.Subject, sc scoredCandidate) {
	if g.explainer == nil {
		return
	}
	counterpartProfile, err := g.loader.profileRepo.GetByUserID(ctx, sc.userID)
	if err != nil {
		return
	}
	explanation, err := g.explainer.ExplainMatch(ctx, subject.Profile, counterpartProfile, match.Breakdown, match.Score)
	if err != nil || explanation == "" {
		if err != nil {
			g.log.Warn("match explanation failed", zap.Int("match_id", match.ID), zap.Error(err))
		}
		return
	}
	if err := g.matchRepo.UpdateExplanation(ctx, match.ID, explanation); err != nil {
		g.log.Warn("store match explanation", zap.Int("match_id", match.ID), zap.Error(err))
	}
}

func (g *Generator) remainingQuota(ctx context.Context, userID int) (int, error) {
	since := g.now().Add(-quotaWindow)
	count, err := g.matchRepo.CountCreatedSince(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("count recent matches for user %d: %w", userID, err)
	}
	return g.cfg.WeeklyCap - count, nil
}

// Preview scores a single pair without persisting anything. Used by the
// operational compatibility endpoint.
func (g *Generator) Preview(ctx context.Context, userAID, userBID int) (*scoring.Result, error) {
	a, err := g.loader.Load(ctx, userAID)
	if err != nil {
		return nil, err
	}
	b, err := g.loader.Load(ctx, userBID)
	if err != nil {
		return nil, err
	}
	result := g.engine.Score(a, b)
	return &result, nil
}
