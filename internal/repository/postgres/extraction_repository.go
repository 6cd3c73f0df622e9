package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
)

type extractionRepository struct {
	db *sqlx.DB
}

func NewExtractionRepository(db *sqlx.DB) repository.ExtractionRepository {
	return &extractionRepository{db: db}
}

// extractionPayload is the JSONB column shape. Engagement counters live in
// their own columns so the game subsystem can bump them cheaply.
type extractionPayload struct {
	Openness          *domain.TraitScore     `json:"openness,omitempty"`
	Conscientiousness *domain.TraitScore     `json:"conscientiousness,omitempty"`
	Extraversion      *domain.TraitScore     `json:"extraversion,omitempty"`
	Agreeableness     *domain.TraitScore     `json:"agreeableness,omitempty"`
	Neuroticism       *domain.TraitScore     `json:"neuroticism,omitempty"`
	RiskTolerance     *domain.TraitScore     `json:"risk_tolerance,omitempty"`
	Persistence       *domain.TraitScore     `json:"persistence,omitempty"`
	Creativity        *domain.TraitScore     `json:"creativity,omitempty"`
	DecisionSpeed     *domain.CategorySignal `json:"decision_speed,omitempty"`
	Values            []string               `json:"values,omitempty"`
	Interests         domain.WeightedSet     `json:"interests,omitempty"`
	RelIndicators     domain.WeightedSet     `json:"relationship_indicators,omitempty"`
}

func (r *extractionRepository) GetByUserID(ctx context.Context, userID int) (*domain.TraitExtraction, error) {
	var (
		id, games, discussions int
		raw                    []byte
		updatedAt              time.Time
	)
	query := `
		SELECT id, payload, games_played, discussions_joined, updated_at
		FROM trait_extractions WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&id, &raw, &games, &discussions, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No extraction yet is an expected state, not an error.
			return nil, nil
		}
		return nil, err
	}

	var payload extractionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode extraction payload for user %d: %w", userID, err)
	}

	return &domain.TraitExtraction{
		ID:                     id,
		UserID:                 userID,
		Openness:               payload.Openness,
		Conscientiousness:      payload.Conscientiousness,
		Extraversion:           payload.Extraversion,
		Agreeableness:          payload.Agreeableness,
		Neuroticism:            payload.Neuroticism,
		RiskTolerance:          payload.RiskTolerance,
		Persistence:            payload.Persistence,
		Creativity:             payload.Creativity,
		DecisionSpeed:          payload.DecisionSpeed,
		Values:                 payload.Values,
		Interests:              payload.Interests,
		RelationshipIndicators: payload.RelIndicators,
		GamesPlayed:            games,
		DiscussionsJoined:      discussions,
		UpdatedAt:              updatedAt,
	}, nil
}
