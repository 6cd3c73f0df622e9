package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Match statuses. Transitions past pending are owned by the review flow.
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusDeclined = "declined"
	MatchStatusExpired  = "expired"
)

// Breakdown aggregates the note lists produced by the dimension scorers.
// Stored as JSONB on the match row.
type Breakdown struct {
	Strengths       []string `json:"strengths,omitempty"`
	Considerations  []string `json:"considerations,omitempty"`
	DealBreakers    []string `json:"deal_breakers,omitempty"`
	SharedInterests []string `json:"shared_interests,omitempty"`
}

// HasDealbreakers reports whether any confirmed dealbreaker conflict was
// recorded, which is the veto condition at generation time.
func (b Breakdown) HasDealbreakers() bool {
	return len(b.DealBreakers) > 0
}

func (b Breakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *Breakdown) Scan(src interface{}) error {
	if src == nil {
		*b = Breakdown{}
		return nil
	}
	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("breakdown: unsupported scan type %T", src)
	}
	return json.Unmarshal(raw, b)
}

// DimensionScores holds the per-dimension sub-scores persisted alongside
// the overall score.
type DimensionScores struct {
	Psychological int `json:"psychological" db:"psychological_score"`
	Behavioral    int `json:"behavioral" db:"behavioral_score"`
	Values        int `json:"values" db:"values_score"`
	Interests     int `json:"interests" db:"interests_score"`
	Lifestyle     int `json:"lifestyle" db:"lifestyle_score"`
	Dealbreakers  int `json:"dealbreakers" db:"dealbreakers_score"`
	Astrological  int `json:"astrological" db:"astrological_score"`
}

// Match is an unordered user pair with its compatibility verdict. At most
// one row per pair ever exists; UserAID < UserBID is enforced by the
// repository before insert.
type Match struct {
	ID               int             `json:"id" db:"id"`
	UserAID          int             `json:"user_a_id" db:"user_a_id"`
	UserBID          int             `json:"user_b_id" db:"user_b_id"`
	Score            int             `json:"score" db:"score"`
	Dimensions       DimensionScores `json:"dimensions"`
	Confidence       float64         `json:"confidence" db:"confidence"`
	Breakdown        Breakdown       `json:"breakdown" db:"breakdown"`
	Status           string          `json:"status" db:"status"`
	Explanation      *string         `json:"explanation" db:"explanation"`
	AlgorithmVersion string          `json:"algorithm_version" db:"algorithm_version"`
	GenerationRunID  uuid.UUID       `json:"generation_run_id" db:"generation_run_id"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID int) bool {
	return m.UserAID == userID || m.UserBID == userID
}

func (m *Match) OtherUserID(userID int) (int, bool) {
	if m.UserAID == userID {
		return m.UserBID, true
	}
	if m.UserBID == userID {
		return m.UserAID, true
	}
	return 0, false
}

// OrderPair returns the pair in canonical (low, high) order.
func OrderPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
