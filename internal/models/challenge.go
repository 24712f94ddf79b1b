package models

import "time"

const (
	ChallengeStatusPending   = "pending"
	ChallengeStatusCompleted = "completed"
)

// Challenge pairs two users over one shared quiz. It moves from pending to
// completed exactly when both the challenger and the opponent appear in
// CompletedBy.
type Challenge struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Challenger  string    `bson:"challenger" json:"challenger"`
	Opponent    string    `bson:"opponent" json:"opponent"`
	QuizID      string    `bson:"quiz_id" json:"quiz_id"`
	Status      string    `bson:"status" json:"status"`
	CompletedBy []string  `bson:"completed_by" json:"completed_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (c *Challenge) CompletedByUser(username string) bool {
	for _, u := range c.CompletedBy {
		if u == username {
			return true
		}
	}
	return false
}

func (c *Challenge) Involves(username string) bool {
	return c.Challenger == username || c.Opponent == username
}

// RecordCompletion adds username to the completed set and recomputes the
// status. Adding the same user twice is a no-op on the set.
func (c *Challenge) RecordCompletion(username string) {
	if !c.CompletedByUser(username) {
		c.CompletedBy = append(c.CompletedBy, username)
	}
	if c.CompletedByUser(c.Challenger) && c.CompletedByUser(c.Opponent) {
		c.Status = ChallengeStatusCompleted
	} else {
		c.Status = ChallengeStatusPending
	}
}

// ChallengeOutcome compares both sides' scores. Ties are reported as ties,
// never broken arbitrarily.
type ChallengeOutcome struct {
	Winner string `json:"winner,omitempty"`
	Tie    bool   `json:"tie"`
}

func DecideOutcome(c *Challenge, challengerScore, opponentScore int) ChallengeOutcome {
	switch {
	case challengerScore > opponentScore:
		return ChallengeOutcome{Winner: c.Challenger}
	case opponentScore > challengerScore:
		return ChallengeOutcome{Winner: c.Opponent}
	default:
		return ChallengeOutcome{Tie: true}
	}
}
