package models

import "time"

// MCQ is a single multiple-choice question. Answer holds the full text of
// the correct choice, not an index, so grading is a plain string compare.
type MCQ struct {
	Question string   `bson:"question" json:"question"`
	Choices  []string `bson:"choices" json:"choices"`
	Answer   string   `bson:"answer" json:"answer"`
}

// ScenarioSet is one generated scenario with its questions, the unit the
// question generator returns.
type ScenarioSet struct {
	Scenario  string `bson:"scenario" json:"scenario"`
	Questions []MCQ  `bson:"questions" json:"questions"`
}

// Quiz is an admin-curated static quiz stored in the quizzes collection.
type Quiz struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	SelectedTopic  string    `bson:"selected_topic" json:"selected_topic"`
	Difficulty     string    `bson:"difficulty" json:"difficulty"`
	CreatedBy      string    `bson:"created_by" json:"created_by"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	MCQs           []MCQ     `bson:"mcqs" json:"mcqs"`
}

// ChallengeQuiz is the shared quiz generated for a peer challenge. It keeps
// the generator's scenario grouping instead of a flat question list.
type ChallengeQuiz struct {
	ID             string        `bson:"_id,omitempty" json:"id"`
	SelectedTopic  string        `bson:"selected_topic" json:"selected_topic"`
	Difficulty     string        `bson:"difficulty" json:"difficulty"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	TotalQuestions int           `bson:"total_questions" json:"total_questions"`
	QuizData       []ScenarioSet `bson:"quiz_data" json:"quiz_data"`
}

func CountQuestions(sets []ScenarioSet) int {
	total := 0
	for _, s := range sets {
		total += len(s.Questions)
	}
	return total
}

// Sanitize returns a copy with the correct answers blanked, for serving a
// quiz to a user about to attempt it.
func Sanitize(mcqs []MCQ) []MCQ {
	out := make([]MCQ, len(mcqs))
	for i, q := range mcqs {
		q.Answer = ""
		out[i] = q
	}
	return out
}

func SanitizeSets(sets []ScenarioSet) []ScenarioSet {
	out := make([]ScenarioSet, len(sets))
	for i, s := range sets {
		out[i] = ScenarioSet{Scenario: s.Scenario, Questions: Sanitize(s.Questions)}
	}
	return out
}

// Grade scores selected answers against a question list. A nil entry means
// the question was left unanswered and counts as incorrect. Selections
// beyond the question list are ignored.
func Grade(mcqs []MCQ, selected []*string) ([]AnswerRecord, int) {
	answers := make([]AnswerRecord, 0, len(mcqs))
	correct := 0
	for i, q := range mcqs {
		rec := AnswerRecord{
			Question:      q.Question,
			CorrectAnswer: q.Answer,
		}
		if i < len(selected) && selected[i] != nil {
			rec.SelectedAnswer = *selected[i]
		}
		if rec.SelectedAnswer == q.Answer {
			correct++
		}
		answers = append(answers, rec)
	}
	return answers, correct
}
