package domain

import "time"

// Dealbreaker responses a user can declare per trait.
const (
	ResponseDealbreaker = "dealbreaker"
	ResponseNiceToHave  = "nice_to_have"
	ResponseMustHave    = "must_have"
	ResponseNeutral     = "neutral"
)

// DealbreakerDeclaration records one user's stance on one trait, e.g.
// ("smoking", dealbreaker) or ("has_pets", must_have). The check is
// symmetric: A's dealbreakers are evaluated against B's declared traits
// and vice versa.
type DealbreakerDeclaration struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Trait     string    `json:"trait" db:"trait"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PollVote is a community poll response, used by the values scorer to
// measure agreement rate on shared questions.
type PollVote struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"user_id" db:"user_id"`
	PollID string `json:"poll_id" db:"poll_id"`
	Choice string `json:"choice" db:"choice"`
}

// ContentView records a consumed content item, used by the interests
// scorer for the shared-content bonus.
type ContentView struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"user_id" db:"user_id"`
	ContentID string `json:"content_id" db:"content_id"`
}

// Block is a bidirectional exclusion between two users.
type Block struct {
	ID            int       `json:"id" db:"id"`
	BlockerID     int       `json:"blocker_id" db:"blocker_id"`
	BlockedUserID int       `json:"blocked_user_id" db:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
