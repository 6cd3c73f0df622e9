package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
)

type runRepository struct {
	db *sqlx.DB
}

func NewRunRepository(db *sqlx.DB) repository.RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *domain.MatchGenerationRun) error {
	query := `
		INSERT INTO match_generation_runs (id, status, algorithm_version, errors, started_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.Status, run.AlgorithmVersion, run.Errors, run.StartedAt)
	return err
}

func (r *runRepository) Finalize(ctx context.Context, run *domain.MatchGenerationRun) error {
	query := `
		UPDATE match_generation_runs
		SET status = $1, users_evaluated = $2, matches_created = $3,
		    candidates_skipped = $4, errors = $5, finished_at = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		run.Status, run.UsersEvaluated, run.MatchesCreated,
		run.CandidatesSkipped, run.Errors, run.FinishedAt, run.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

const runColumns = `
	id, status, algorithm_version, users_evaluated, matches_created,
	candidates_skipped, errors, started_at, finished_at
`

func (r *runRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchGenerationRun, error) {
	var run domain.MatchGenerationRun
	query := `SELECT ` + runColumns + ` FROM match_generation_runs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.Status, &run.AlgorithmVersion,
		&run.UsersEvaluated, &run.MatchesCreated, &run.CandidatesSkipped,
		&run.Errors, &run.StartedAt, &run.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (r *runRepository) List(ctx context.Context, limit, offset int) ([]*domain.MatchGenerationRun, error) {
	query := `
		SELECT ` + runColumns + `
		FROM match_generation_runs
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.MatchGenerationRun
	for rows.Next() {
		var run domain.MatchGenerationRun
		err := rows.Scan(
			&run.ID, &run.Status, &run.AlgorithmVersion,
			&run.UsersEvaluated, &run.MatchesCreated, &run.CandidatesSkipped,
			&run.Errors, &run.StartedAt, &run.FinishedAt,
		)
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
