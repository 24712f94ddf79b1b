package models

import "testing"

func newChallenge() *Challenge {
	return &Challenge{
		Challenger: "alice",
		Opponent:   "bob",
		Status:     ChallengeStatusPending,
	}
}

func TestRecordCompletionChallengerFirst(t *testing.T) {
	c := newChallenge()

	c.RecordCompletion("alice")
	if c.Status != ChallengeStatusPending {
		t.Fatalf("status = %q after one side, want pending", c.Status)
	}

	c.RecordCompletion("bob")
	if c.Status != ChallengeStatusCompleted {
		t.Fatalf("status = %q after both sides, want completed", c.Status)
	}
}

func TestRecordCompletionOpponentFirst(t *testing.T) {
	c := newChallenge()

	c.RecordCompletion("bob")
	if c.Status != ChallengeStatusPending {
		t.Fatalf("status = %q after one side, want pending", c.Status)
	}

	c.RecordCompletion("alice")
	if c.Status != ChallengeStatusCompleted {
		t.Fatalf("status = %q after both sides, want completed", c.Status)
	}
}

func TestRecordCompletionDuplicate(t *testing.T) {
	c := newChallenge()

	c.RecordCompletion("alice")
	c.RecordCompletion("alice")
	if len(c.CompletedBy) != 1 {
		t.Fatalf("CompletedBy = %v, want a set", c.CompletedBy)
	}
	if c.Status != ChallengeStatusPending {
		t.Fatalf("status = %q, one user twice must not complete the challenge", c.Status)
	}
}

func TestCompletedByUser(t *testing.T) {
	c := newChallenge()
	c.RecordCompletion("bob")

	if !c.CompletedByUser("bob") {
		t.Error("bob completed but CompletedByUser says no")
	}
	if c.CompletedByUser("alice") {
		t.Error("alice has not completed")
	}
}

func TestInvolves(t *testing.T) {
	c := newChallenge()
	if !c.Involves("alice") || !c.Involves("bob") {
		t.Error("both participants should be involved")
	}
	if c.Involves("carol") {
		t.Error("carol is not a participant")
	}
}

func TestDecideOutcome(t *testing.T) {
	c := newChallenge()

	tests := []struct {
		name       string
		challenger int
		opponent   int
		winner     string
		tie        bool
	}{
		{"challenger wins", 8, 5, "alice", false},
		{"opponent wins", 3, 7, "bob", false},
		{"tie", 6, 6, "", true},
		{"zero tie", 0, 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DecideOutcome(c, tt.challenger, tt.opponent)
			if out.Winner != tt.winner || out.Tie != tt.tie {
				t.Errorf("DecideOutcome(%d, %d) = %+v, want winner %q tie %v",
					tt.challenger, tt.opponent, out, tt.winner, tt.tie)
			}
		})
	}
}
