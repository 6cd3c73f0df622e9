package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Decision speed categories produced by the mini-game subsystem.
const (
	DecisionFast       = "fast"
	DecisionDeliberate = "deliberate"
	DecisionImpulsive  = "impulsive"
)

// TraitScore is a behaviorally validated 0-100 trait value with the
// extraction confidence attached.
type TraitScore struct {
	Value      int     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// CategorySignal is the categorical counterpart of TraitScore.
type CategorySignal struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// WeightedSet maps a label to a 0-1 strength. Used for extracted interest
// and relationship indicator vectors.
type WeightedSet map[string]float64

func (s WeightedSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *WeightedSet) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("weighted set: unsupported scan type %T", src)
	}
	return json.Unmarshal(b, s)
}

// TraitExtraction is the behaviorally validated counterpart of Profile,
// produced by the game and discussion subsystems. Read-only to this core.
type TraitExtraction struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	Openness          *TraitScore `json:"openness"`
	Conscientiousness *TraitScore `json:"conscientiousness"`
	Extraversion      *TraitScore `json:"extraversion"`
	Agreeableness     *TraitScore `json:"agreeableness"`
	Neuroticism       *TraitScore `json:"neuroticism"`

	RiskTolerance *TraitScore     `json:"risk_tolerance"`
	Persistence   *TraitScore     `json:"persistence"`
	Creativity    *TraitScore     `json:"creativity"`
	DecisionSpeed *CategorySignal `json:"decision_speed"`

	Values                 []string    `json:"values"`
	Interests              WeightedSet `json:"interests"`
	RelationshipIndicators WeightedSet `json:"relationship_indicators"`

	GamesPlayed       int `json:"games_played" db:"games_played"`
	DiscussionsJoined int `json:"discussions_joined" db:"discussions_joined"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Completeness reports the populated fraction of the extraction's signal
// groups, used for match confidence.
func (e *TraitExtraction) Completeness() float64 {
	if e == nil {
		return 0
	}
	populated := 0
	if e.Openness != nil || e.Conscientiousness != nil || e.Agreeableness != nil ||
		e.Extraversion != nil || e.Neuroticism != nil {
		populated++
	}
	if e.RiskTolerance != nil || e.Persistence != nil || e.Creativity != nil || e.DecisionSpeed != nil {
		populated++
	}
	if len(e.Values) > 0 {
		populated++
	}
	if len(e.Interests) > 0 {
		populated++
	}
	if e.GamesPlayed > 0 || e.DiscussionsJoined > 0 {
		populated++
	}
	return float64(populated) / 5.0
}
