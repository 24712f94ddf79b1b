package models

// CorrectVsIncorrect mirrors the nested object the feedback generator
// returns. The provider sometimes emits the counts as strings and sometimes
// as numbers, so they stay untyped.
type CorrectVsIncorrect struct {
	CorrectCount   interface{} `bson:"correct_count" json:"correct_count"`
	IncorrectCount interface{} `bson:"incorrect_count" json:"incorrect_count"`
	Analysis       string      `bson:"analysis" json:"analysis"`
}

// Feedback is the LLM-generated performance report stored with a quiz
// result and rendered into the exported PDF.
type Feedback struct {
	OverallPerformance    string             `bson:"overall_performance" json:"overall_performance"`
	CorrectVsIncorrect    CorrectVsIncorrect `bson:"correct_vs_incorrect" json:"correct_vs_incorrect"`
	AreasOfImprovement    string             `bson:"areas_of_improvement" json:"areas_of_improvement"`
	TopicSpecificFeedback string             `bson:"topic_specific_feedback" json:"topic_specific_feedback"`
	NextSteps             string             `bson:"next_steps" json:"next_steps"`
}
