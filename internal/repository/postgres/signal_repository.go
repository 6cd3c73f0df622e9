package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
)

type dealbreakerRepository struct {
	db *sqlx.DB
}

func NewDealbreakerRepository(db *sqlx.DB) repository.DealbreakerRepository {
	return &dealbreakerRepository{db: db}
}

func (r *dealbreakerRepository) ListByUserID(ctx context.Context, userID int) ([]domain.DealbreakerDeclaration, error) {
	var decls []domain.DealbreakerDeclaration
	query := `
		SELECT id, user_id, trait, response, created_at
		FROM dealbreaker_declarations
		WHERE user_id = $1
		ORDER BY trait
	`
	err := r.db.SelectContext(ctx, &decls, query, userID)
	return decls, err
}

type pollRepository struct {
	db *sqlx.DB
}

func NewPollRepository(db *sqlx.DB) repository.PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) GetVotes(ctx context.Context, userID int) (map[string]string, error) {
	var votes []domain.PollVote
	query := `SELECT id, user_id, poll_id, choice FROM poll_votes WHERE user_id = $1`
	if err := r.db.SelectContext(ctx, &votes, query, userID); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(votes))
	for _, v := range votes {
		out[v.PollID] = v.Choice
	}
	return out, nil
}

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListViewedContentIDs(ctx context.Context, userID int) ([]string, error) {
	var ids []string
	query := `SELECT content_id FROM content_views WHERE user_id = $1 ORDER BY content_id`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

type blockRepository struct {
	db *sqlx.DB
}

func NewBlockRepository(db *sqlx.DB) repository.BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) ListInvolvedUserIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	query := `
		SELECT blocked_user_id FROM blocks WHERE blocker_id = $1
		UNION
		SELECT blocker_id FROM blocks WHERE blocked_user_id = $1
	`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}
