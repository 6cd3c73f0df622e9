package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, display_name, city, country, core_values, attachment_style,
	openness, conscientiousness, extraversion, agreeableness, neuroticism,
	wants_children, geo_flexible,
	social_preference, activity_level, planning_style, conflict_style,
	pref_min_age, pref_max_age, require_same_city,
	is_onboarding_complete, created_at, updated_at
`

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.City, &p.Country,
		pq.Array(&p.CoreValues), &p.AttachmentStyle,
		&p.Openness, &p.Conscientiousness, &p.Extraversion, &p.Agreeableness, &p.Neuroticism,
		&p.WantsChildren, &p.GeoFlexible,
		&p.SocialPreference, &p.ActivityLevel, &p.PlanningStyle, &p.ConflictStyle,
		&p.PrefMinAge, &p.PrefMaxAge, &p.RequireSameCity,
		&p.IsOnboardingComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, userID))
}

func (r *profileRepository) ListActive(ctx context.Context) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		WHERE is_onboarding_complete = true
		  AND EXISTS (SELECT 1 FROM users u WHERE u.id = p.user_id AND u.is_active = true)
		ORDER BY user_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var p domain.Profile
		err := rows.Scan(
			&p.ID, &p.UserID, &p.DisplayName, &p.City, &p.Country,
			pq.Array(&p.CoreValues), &p.AttachmentStyle,
			&p.Openness, &p.Conscientiousness, &p.Extraversion, &p.Agreeableness, &p.Neuroticism,
			&p.WantsChildren, &p.GeoFlexible,
			&p.SocialPreference, &p.ActivityLevel, &p.PlanningStyle, &p.ConflictStyle,
			&p.PrefMinAge, &p.PrefMaxAge, &p.RequireSameCity,
			&p.IsOnboardingComplete, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}
