package adaptive

import (
	"time"

	"aiquizzer/internal/models"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Session is the persisted state of one in-progress adaptive quiz. It is
// the explicit finite-state record handed between requests: the current
// batch (with answers, never sent to the client), the running answer list
// and the difficulty tier the next batch will be generated at.
type Session struct {
	ID             string             `bson:"_id,omitempty" json:"id"`
	Token          string             `bson:"token" json:"token"`
	Username       string             `bson:"username" json:"username"`
	SelectedTopics []string           `bson:"selected_topics" json:"selected_topics"`
	Difficulty     Difficulty         `bson:"difficulty" json:"difficulty"`
	QuestionBatch  int                `bson:"question_batch" json:"question_batch"`
	CorrectCount   int                `bson:"correct_count" json:"correct_count"`
	TotalAnswers   []models.ResultRow `bson:"total_answers" json:"total_answers"`
	Scenario       string             `bson:"scenario" json:"scenario"`
	BatchQuestions []models.MCQ       `bson:"batch_questions" json:"batch_questions"`
	QuizStartedAt  time.Time          `bson:"quiz_started_at" json:"quiz_started_at"`
}

func NewSession(token, username string, topics []string) *Session {
	return &Session{
		Token:          token,
		Username:       username,
		SelectedTopics: topics,
		Difficulty:     DifficultyEasy,
		QuestionBatch:  1,
		TotalAnswers:   []models.ResultRow{},
		QuizStartedAt:  time.Now(),
	}
}
