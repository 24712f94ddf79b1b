package llm

import (
	"fmt"
	"math/rand"
	"strings"
)

const questionPromptTemplate = `You are an advanced quiz generator focused on scenario-based adaptive learning.

### Task:
- Present a real-world problem or scenario relevant to the specified topic.
- The scenario should be engaging and realistically applicable in an industrial or daily life setting.
- Following the scenario, generate 5 multiple-choice questions (MCQs) based on it.
- The questions should progress in difficulty and align with the level specified.

### Difficulty Levels:
- Easy: basic understanding, recall, or simple application of knowledge.
- Medium: moderate analysis, problem-solving, numerical problems and conceptual application.
- Hard: complex decision-making, real-world application, critical thinking and coding problems.

### Output Format:
The response must be a JSON array structured as follows:
[
    {
        "scenario": "[Brief scenario description relevant to the topic]",
        "questions": [
            {
                "question": "[MCQ question text]",
                "choices": [
                    "a) [Option A text]",
                    "b) [Option B text]",
                    "c) [Option C text]",
                    "d) [Option D text]"
                ],
                "answer": "[Full text of the correct option, e.g., 'a) Option A text']"
            }
        ]
    }
]
Return only the JSON array, with exactly 5 questions.

Now, generate a scenario-based MCQ set for:
Topic: %s | Difficulty: %s
Variation seed: %d
`

const feedbackPromptTemplate = `You are a learning assistant that provides personalized feedback to students based on their quiz performance.

### Task:
Based on the quiz performance, generate a detailed feedback report that includes:
1. Overall Performance Summary: a brief summary of how well the student did.
2. Correct vs Incorrect Analysis: how many answers were correct and incorrect, and why certain questions might have been answered incorrectly.
3. Areas of Improvement: specific areas to improve based on the difficulty level of the questions.
4. Topic-Specific Feedback: actionable suggestions specific to the topic.
5. Next Steps: recommended actions to improve understanding of the topic.

### Input Details:
- Topic: %s
- Total Score: %d
- Total Questions: %d
- Correct Answers: %d
- Incorrect Answers: %d
- Difficulty Level: %s
- Difficulty Performance: %s

### Output:
The response must be a single JSON object structured as follows:
{
    "overall_performance": "[Short performance summary]",
    "correct_vs_incorrect": {
        "correct_count": "[Number of correct answers]",
        "incorrect_count": "[Number of incorrect answers]",
        "analysis": "[Analysis of why certain questions might have been answered incorrectly]"
    },
    "areas_of_improvement": "[Specific areas to improve based on performance]",
    "topic_specific_feedback": "[Topic-specific suggestions to deepen knowledge]",
    "next_steps": "[Actions to take next for improvement]"
}
Return only the JSON object.
Variation seed: %d
`

// BuildQuestionPrompt formats the generation prompt. The seed carries no
// meaning to the model beyond varying the completion between calls.
func BuildQuestionPrompt(topics []string, difficulty string) string {
	return fmt.Sprintf(questionPromptTemplate, strings.Join(topics, ", "), difficulty, rand.Intn(100000)+1)
}

// FeedbackInput bundles the score breakdown the feedback prompt needs.
type FeedbackInput struct {
	Topic                 string
	TotalScore            int
	TotalQuestions        int
	CorrectCount          int
	IncorrectCount        int
	Difficulty            string
	DifficultyPerformance string
}

func BuildFeedbackPrompt(in FeedbackInput) string {
	return fmt.Sprintf(feedbackPromptTemplate,
		in.Topic, in.TotalScore, in.TotalQuestions, in.CorrectCount,
		in.IncorrectCount, in.Difficulty, in.DifficultyPerformance,
		rand.Intn(100000)+1)
}
