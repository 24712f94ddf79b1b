package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"aiquizzer/internal/models"
)

// GenerateQuestions asks the model for a scenario plus MCQ set at the given
// difficulty. Parse-or-fail: a provider error or malformed JSON yields an
// error and no partial result, and the caller treats that as generation
// failure.
func (c *Client) GenerateQuestions(ctx context.Context, topics []string, difficulty string) ([]models.ScenarioSet, error) {
	completion, err := c.Complete(ctx, BuildQuestionPrompt(topics, difficulty))
	if err != nil {
		return nil, err
	}

	var sets []models.ScenarioSet
	if err := json.Unmarshal([]byte(stripFences(completion)), &sets); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %v", err)
	}
	if models.CountQuestions(sets) == 0 {
		return nil, fmt.Errorf("generated quiz contains no questions")
	}
	return sets, nil
}
