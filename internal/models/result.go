package models

import "time"

// ResultRow is one answered question inside a stored adaptive quiz result,
// tagged with the difficulty the batch was served at.
type ResultRow struct {
	Question      string `bson:"question" json:"question"`
	UserAnswer    string `bson:"user_answer" json:"user_answer"`
	CorrectAnswer string `bson:"correct_answer" json:"correct_answer"`
	Difficulty    string `bson:"difficulty" json:"difficulty"`
}

// QuizResult is the persisted outcome of a full adaptive/scenario session.
// Documents expire 24 hours after QuizStartedAt via a TTL index.
type QuizResult struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	Username       string      `bson:"username" json:"username"`
	SelectedTopics []string    `bson:"selected_topics" json:"selected_topics"`
	TotalCorrect   int         `bson:"total_correct" json:"total_correct"`
	TotalQuestions int         `bson:"total_questions" json:"total_questions"`
	Feedback       *Feedback   `bson:"feedback" json:"feedback"`
	QuizStartedAt  time.Time   `bson:"quiz_started_at" json:"quiz_started_at"`
	Results        []ResultRow `bson:"results" json:"results"`
}
