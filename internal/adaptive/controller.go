package adaptive

import (
	"fmt"

	"aiquizzer/internal/models"
)

// DefaultTargetQuestions is how many answers a session accumulates before
// it terminates. Batches arrive in groups of up to BatchSize per
// generation call; a short batch from the generator is recorded at its raw
// size, so the final total may exceed the target by a few questions but
// the session ends on the first submission that reaches it.
const (
	DefaultTargetQuestions = 20
	BatchSize              = 5
)

// Controller decides difficulty progression and termination for adaptive
// sessions.
type Controller struct {
	Target int
}

func NewController() *Controller {
	return &Controller{Target: DefaultTargetQuestions}
}

// NextDifficulty maps a batch's correct count to the next tier. Total over
// [0, BatchSize]: hard at 4 or more, medium at 2 or 3, easy below.
func NextDifficulty(correctCount int) Difficulty {
	switch {
	case correctCount >= 4:
		return DifficultyHard
	case correctCount >= 2:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// GradeBatch scores the selected answers against the session's stored
// batch. Unanswered questions count as incorrect.
func (c *Controller) GradeBatch(s *Session, selected []*string) ([]models.ResultRow, int, error) {
	if len(s.BatchQuestions) == 0 {
		return nil, 0, fmt.Errorf("session has no pending question batch")
	}

	answers, correct := models.Grade(s.BatchQuestions, selected)
	rows := make([]models.ResultRow, len(answers))
	for i, a := range answers {
		rows[i] = models.ResultRow{
			Question:      a.Question,
			UserAnswer:    a.SelectedAnswer,
			CorrectAnswer: a.CorrectAnswer,
			Difficulty:    string(s.Difficulty),
		}
	}
	return rows, correct, nil
}

// RecordBatch folds a graded batch into the session state: answers are
// appended at their raw count, the difficulty for the next batch is chosen
// from this batch's correct count and the batch counter advances. The
// consumed batch is cleared so it cannot be submitted twice.
func (c *Controller) RecordBatch(s *Session, rows []models.ResultRow, correct int) {
	s.TotalAnswers = append(s.TotalAnswers, rows...)
	s.CorrectCount += correct
	s.Difficulty = NextDifficulty(correct)
	s.QuestionBatch++
	s.Scenario = ""
	s.BatchQuestions = nil
}

// Complete reports whether the session has reached its question target.
func (c *Controller) Complete(s *Session) bool {
	return len(s.TotalAnswers) >= c.Target
}

// TotalCorrect recounts correct answers from the accumulated rows.
func TotalCorrect(s *Session) int {
	correct := 0
	for _, row := range s.TotalAnswers {
		if row.UserAnswer == row.CorrectAnswer {
			correct++
		}
	}
	return correct
}
