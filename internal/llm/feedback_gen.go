package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"aiquizzer/internal/models"
)

// GenerateFeedback asks the model for a performance report on a finished
// quiz. Same contract as question generation: parse-or-fail, no partials.
func (c *Client) GenerateFeedback(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	completion, err := c.Complete(ctx, BuildFeedbackPrompt(in))
	if err != nil {
		return nil, err
	}

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(stripFences(completion)), &feedback); err != nil {
		return nil, fmt.Errorf("failed to parse generated feedback: %v", err)
	}
	if feedback.OverallPerformance == "" {
		return nil, fmt.Errorf("generated feedback is empty")
	}
	return &feedback, nil
}
