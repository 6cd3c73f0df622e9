package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	// Canonical ordering keeps the (user_a_id, user_b_id) unique index
	// covering the unordered pair.
	userA, userB := domain.OrderPair(match.UserAID, match.UserBID)

	query := `
		INSERT INTO matches (
			user_a_id, user_b_id, score,
			psychological_score, behavioral_score, values_score, interests_score,
			lifestyle_score, dealbreakers_score, astrological_score,
			confidence, breakdown, status, algorithm_version, generation_run_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_a_id, user_b_id) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		userA, userB, match.Score,
		match.Dimensions.Psychological, match.Dimensions.Behavioral,
		match.Dimensions.Values, match.Dimensions.Interests,
		match.Dimensions.Lifestyle, match.Dimensions.Dealbreakers,
		match.Dimensions.Astrological,
		match.Confidence, match.Breakdown, match.Status,
		match.AlgorithmVersion, match.GenerationRunID,
	).Scan(&match.ID, &match.CreatedAt)

	match.UserAID = userA
	match.UserBID = userB

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Conflict with an existing pair: benign no-op.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

const matchColumns = `
	id, user_a_id, user_b_id, score,
	psychological_score, behavioral_score, values_score, interests_score,
	lifestyle_score, dealbreakers_score, astrological_score,
	confidence, breakdown, status, explanation, algorithm_version,
	generation_run_id, created_at
`

func scanMatch(scan func(dest ...interface{}) error) (*domain.Match, error) {
	var m domain.Match
	err := scan(
		&m.ID, &m.UserAID, &m.UserBID, &m.Score,
		&m.Dimensions.Psychological, &m.Dimensions.Behavioral,
		&m.Dimensions.Values, &m.Dimensions.Interests,
		&m.Dimensions.Lifestyle, &m.Dimensions.Dealbreakers,
		&m.Dimensions.Astrological,
		&m.Confidence, &m.Breakdown, &m.Status, &m.Explanation,
		&m.AlgorithmVersion, &m.GenerationRunID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, userAID, userBID int) (*domain.Match, error) {
	userA, userB := domain.OrderPair(userAID, userBID)
	query := `SELECT ` + matchColumns + ` FROM matches WHERE user_a_id = $1 AND user_b_id = $2`
	m, err := scanMatch(r.db.QueryRowContext(ctx, query, userA, userB).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		m, err := scanMatch(rows.Scan)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) ListPartnerIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	query := `
		SELECT CASE WHEN user_a_id = $1 THEN user_b_id ELSE user_a_id END
		FROM matches
		WHERE user_a_id = $1 OR user_b_id = $1
	`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *matchRepository) CountCreatedSince(ctx context.Context, userID int, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM matches
		WHERE (user_a_id = $1 OR user_b_id = $1) AND created_at >= $2
	`
	err := r.db.GetContext(ctx, &count, query, userID, since)
	return count, err
}

func (r *matchRepository) UpdateExplanation(ctx context.Context, id int, explanation string) error {
	query := `UPDATE matches SET explanation = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, explanation, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
