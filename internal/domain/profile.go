package domain

import "time"

// Attachment styles collected during onboarding.
const (
	AttachmentSecure       = "secure"
	AttachmentAnxious      = "anxious"
	AttachmentAvoidant     = "avoidant"
	AttachmentDisorganized = "disorganized"
)

// Profile holds self-reported attributes. It is owned by the onboarding
// flow and read-only to the matching core.
type Profile struct {
	ID          int     `json:"id" db:"id"`
	UserID      int     `json:"user_id" db:"user_id"`
	DisplayName string  `json:"display_name" db:"display_name"`
	City        *string `json:"city" db:"city"`
	Country     *string `json:"country" db:"country"`

	CoreValues      []string `json:"core_values" db:"core_values"`
	AttachmentStyle *string  `json:"attachment_style" db:"attachment_style"`

	// Big Five self-assessment, each 0-100.
	Openness          *int `json:"openness" db:"openness"`
	Conscientiousness *int `json:"conscientiousness" db:"conscientiousness"`
	Extraversion      *int `json:"extraversion" db:"extraversion"`
	Agreeableness     *int `json:"agreeableness" db:"agreeableness"`
	Neuroticism       *int `json:"neuroticism" db:"neuroticism"`

	WantsChildren *bool `json:"wants_children" db:"wants_children"`
	GeoFlexible   bool  `json:"geo_flexible" db:"geo_flexible"`

	SocialPreference *string `json:"social_preference" db:"social_preference"`
	ActivityLevel    *string `json:"activity_level" db:"activity_level"`
	PlanningStyle    *string `json:"planning_style" db:"planning_style"`
	ConflictStyle    *string `json:"conflict_style" db:"conflict_style"`

	PrefMinAge      *int `json:"pref_min_age" db:"pref_min_age"`
	PrefMaxAge      *int `json:"pref_max_age" db:"pref_max_age"`
	RequireSameCity bool `json:"require_same_city" db:"require_same_city"`

	IsOnboardingComplete bool      `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
