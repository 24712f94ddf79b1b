package adaptive

import (
	"fmt"
	"testing"

	"aiquizzer/internal/models"
)

func TestNextDifficulty(t *testing.T) {
	testCases := []struct {
		correct  int
		expected Difficulty
	}{
		{0, DifficultyEasy},
		{1, DifficultyEasy},
		{2, DifficultyMedium},
		{3, DifficultyMedium},
		{4, DifficultyHard},
		{5, DifficultyHard},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("correct_%d", tc.correct), func(t *testing.T) {
			got := NextDifficulty(tc.correct)
			if got != tc.expected {
				t.Errorf("NextDifficulty(%d) = %s, want %s", tc.correct, got, tc.expected)
			}
		})
	}
}

func batchOf(n int) []models.MCQ {
	qs := make([]models.MCQ, n)
	for i := range qs {
		qs[i] = models.MCQ{
			Question: fmt.Sprintf("Q%d", i+1),
			Choices:  []string{"a) one", "b) two", "c) three", "d) four"},
			Answer:   "a) one",
		}
	}
	return qs
}

// selections answering the first `correct` questions right and the rest wrong
func selections(total, correct int) []*string {
	right := "a) one"
	wrong := "b) two"
	sel := make([]*string, total)
	for i := 0; i < total; i++ {
		if i < correct {
			sel[i] = &right
		} else {
			sel[i] = &wrong
		}
	}
	return sel
}

func TestGradeBatch(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"SQL"})
	s.BatchQuestions = batchOf(5)

	rows, correct, err := c.GradeBatch(s, selections(5, 3))
	if err != nil {
		t.Fatalf("GradeBatch returned error: %v", err)
	}
	if correct != 3 {
		t.Errorf("expected 3 correct, got %d", correct)
	}
	if len(rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Difficulty != string(DifficultyEasy) {
			t.Errorf("row difficulty = %s, want easy", row.Difficulty)
		}
	}
}

func TestGradeBatchWithoutPendingQuestions(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"SQL"})

	if _, _, err := c.GradeBatch(s, nil); err == nil {
		t.Error("expected error for session with no pending batch")
	}
}

func TestGradeBatchUnansweredCountsIncorrect(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"SQL"})
	s.BatchQuestions = batchOf(5)

	right := "a) one"
	rows, correct, err := c.GradeBatch(s, []*string{&right, nil, nil, nil, nil})
	if err != nil {
		t.Fatalf("GradeBatch returned error: %v", err)
	}
	if correct != 1 {
		t.Errorf("expected 1 correct, got %d", correct)
	}
	if rows[1].UserAnswer != "" {
		t.Errorf("unanswered row should have empty user answer, got %q", rows[1].UserAnswer)
	}
}

func TestRecordBatchProgression(t *testing.T) {
	// 3/5 in batch 1 moves the session to medium (spec scenario).
	c := NewController()
	s := NewSession("tok", "alice", []string{"ML", "SQL"})
	s.BatchQuestions = batchOf(5)

	rows, correct, err := c.GradeBatch(s, selections(5, 3))
	if err != nil {
		t.Fatalf("GradeBatch returned error: %v", err)
	}
	c.RecordBatch(s, rows, correct)

	if s.Difficulty != DifficultyMedium {
		t.Errorf("difficulty after 3/5 = %s, want medium", s.Difficulty)
	}
	if s.QuestionBatch != 2 {
		t.Errorf("question batch = %d, want 2", s.QuestionBatch)
	}
	if len(s.TotalAnswers) != 5 {
		t.Errorf("total answers = %d, want 5", len(s.TotalAnswers))
	}
	if s.BatchQuestions != nil {
		t.Error("consumed batch should be cleared")
	}
}

func TestSessionTerminatesAtTarget(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"OS"})

	sizes := []int{5, 5, 5, 5}
	for i, size := range sizes {
		if c.Complete(s) {
			t.Fatalf("session complete after %d batches, too early", i)
		}
		s.BatchQuestions = batchOf(size)
		rows, correct, err := c.GradeBatch(s, selections(size, size))
		if err != nil {
			t.Fatalf("batch %d: %v", i+1, err)
		}
		c.RecordBatch(s, rows, correct)

		// Answer count grows by exactly the batch size each submission.
		want := 0
		for _, n := range sizes[:i+1] {
			want += n
		}
		if len(s.TotalAnswers) != want {
			t.Fatalf("after batch %d: total answers = %d, want %d", i+1, len(s.TotalAnswers), want)
		}
	}

	if !c.Complete(s) {
		t.Error("session should be complete at 20 answers")
	}
	if len(s.TotalAnswers) != 20 {
		t.Errorf("total answers = %d, want 20", len(s.TotalAnswers))
	}
}

func TestShortFinalBatchUsesRawCount(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"OS"})

	// Generator returned short batches; no padding or truncation happens.
	for _, size := range []int{5, 5, 4, 3} {
		s.BatchQuestions = batchOf(size)
		rows, correct, _ := c.GradeBatch(s, selections(size, 2))
		c.RecordBatch(s, rows, correct)
	}
	if c.Complete(s) {
		t.Fatalf("17 answers should not complete the session")
	}

	s.BatchQuestions = batchOf(5)
	rows, correct, _ := c.GradeBatch(s, selections(5, 5))
	c.RecordBatch(s, rows, correct)

	if !c.Complete(s) {
		t.Error("session should complete once the target is reached")
	}
	if len(s.TotalAnswers) != 22 {
		t.Errorf("total answers = %d, want 22 (raw batch sizes)", len(s.TotalAnswers))
	}
}

func TestTotalCorrect(t *testing.T) {
	c := NewController()
	s := NewSession("tok", "alice", []string{"OS"})
	s.BatchQuestions = batchOf(5)
	rows, correct, _ := c.GradeBatch(s, selections(5, 4))
	c.RecordBatch(s, rows, correct)

	if got := TotalCorrect(s); got != 4 {
		t.Errorf("TotalCorrect = %d, want 4", got)
	}
	if s.CorrectCount != 4 {
		t.Errorf("running correct count = %d, want 4", s.CorrectCount)
	}
}
