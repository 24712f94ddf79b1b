package models

import "time"

type AnswerRecord struct {
	Question       string `bson:"question" json:"question"`
	SelectedAnswer string `bson:"selected_answer" json:"selected_answer"`
	CorrectAnswer  string `bson:"correct_answer" json:"correct_answer"`
}

// Attempt is one user's submission of a quiz, stored in quiz_attempts or
// challenge_attempts depending on the flow that produced it.
type Attempt struct {
	ID                  string         `bson:"_id,omitempty" json:"id"`
	QuizID              string         `bson:"quiz_id" json:"quiz_id"`
	AttemptedBy         string         `bson:"attempted_by" json:"attempted_by"`
	AttemptedAt         time.Time      `bson:"attempted_at" json:"attempted_at"`
	Answers             []AnswerRecord `bson:"answers" json:"answers"`
	CorrectAnswersCount int            `bson:"correct_answers_count" json:"correct_answers_count"`
	TotalQuestions      int            `bson:"total_questions" json:"total_questions"`
}
