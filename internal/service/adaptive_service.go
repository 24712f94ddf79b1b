package service

import (
	"context"
	"strings"

	"aiquizzer/internal/adaptive"
	"aiquizzer/internal/llm"
	"aiquizzer/internal/models"
	"aiquizzer/internal/report"
	"aiquizzer/internal/repository"

	"github.com/google/uuid"
)

// AdaptiveService orchestrates the adaptive/scenario quiz: it owns the
// persisted session record, asks the generator for each batch and turns a
// finished session into a stored QuizResult.
type AdaptiveService struct {
	Sessions   *repository.SessionRepository
	Results    *repository.ResultRepository
	Controller *adaptive.Controller
	LLM        *llm.Client
}

func NewAdaptiveService(sessions *repository.SessionRepository, results *repository.ResultRepository, client *llm.Client) *AdaptiveService {
	return &AdaptiveService{
		Sessions:   sessions,
		Results:    results,
		Controller: adaptive.NewController(),
		LLM:        client,
	}
}

// BatchView is what the client sees of the current batch: scenario and
// questions with the answers stripped.
type BatchView struct {
	Token         string       `json:"token"`
	QuestionBatch int          `json:"question_batch"`
	Difficulty    string       `json:"difficulty"`
	Scenario      string       `json:"scenario"`
	Questions     []models.MCQ `json:"questions"`
	Answered      int          `json:"answered"`
}

func batchView(s *adaptive.Session) *BatchView {
	return &BatchView{
		Token:         s.Token,
		QuestionBatch: s.QuestionBatch,
		Difficulty:    string(s.Difficulty),
		Scenario:      s.Scenario,
		Questions:     models.Sanitize(s.BatchQuestions),
		Answered:      len(s.TotalAnswers),
	}
}

// Start generates the first batch at easy difficulty and persists a fresh
// session. Generation failure means no session is created at all.
func (s *AdaptiveService) Start(ctx context.Context, username string, topics []string) (*BatchView, error) {
	session := adaptive.NewSession(uuid.NewString(), username, topics)

	sets, err := s.LLM.GenerateQuestions(ctx, topics, string(session.Difficulty))
	if err != nil {
		return nil, err
	}
	session.Scenario = sets[0].Scenario
	session.BatchQuestions = sets[0].Questions

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return batchView(session), nil
}

// SubmitResult reports one submission's outcome: a per-question
// correction of the batch just graded, and either the next batch or the
// final summary once the session completed.
type SubmitResult struct {
	Completed    bool               `json:"completed"`
	BatchCorrect int                `json:"batch_correct"`
	BatchRows    []models.ResultRow `json:"batch_rows"`
	NextBatch    *BatchView         `json:"next_batch,omitempty"`
	Result       *models.QuizResult `json:"result,omitempty"`
}

// Events lists the routing keys a submission emits: every submit is a
// batch event, and the closing submit also completes the session.
func (r *SubmitResult) Events() []string {
	events := []string{"adaptive.batch_submitted"}
	if r.Completed {
		events = append(events, "session.completed")
	}
	return events
}

// Submit grades the pending batch and advances the session. On reaching
// the question target it generates feedback, persists the result (TTL'd)
// and discards the session; otherwise it fetches the next batch at the
// recomputed difficulty. If the next-batch generation fails the whole
// submission fails and the session keeps its ungraded batch, so the user
// can simply retry.
func (s *AdaptiveService) Submit(ctx context.Context, token, username string, selected []*string) (*SubmitResult, error) {
	session, err := s.Sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Username != username {
		return nil, ErrNotParticipant
	}

	rows, correct, err := s.Controller.GradeBatch(session, selected)
	if err != nil {
		return nil, err
	}
	s.Controller.RecordBatch(session, rows, correct)

	out := &SubmitResult{BatchCorrect: correct, BatchRows: rows}

	if s.Controller.Complete(session) {
		result, err := s.finishSession(ctx, session)
		if err != nil {
			return nil, err
		}
		out.Completed = true
		out.Result = result
		return out, nil
	}

	sets, err := s.LLM.GenerateQuestions(ctx, session.SelectedTopics, string(session.Difficulty))
	if err != nil {
		return nil, err
	}
	session.Scenario = sets[0].Scenario
	session.BatchQuestions = sets[0].Questions

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	out.NextBatch = batchView(session)
	return out, nil
}

func (s *AdaptiveService) finishSession(ctx context.Context, session *adaptive.Session) (*models.QuizResult, error) {
	totalCorrect := adaptive.TotalCorrect(session)
	totalQuestions := len(session.TotalAnswers)
	breakdown := report.BreakdownByDifficulty(session.TotalAnswers)

	// Feedback failure is surfaced to the user (they retry the
	// submission); the result is only stored with its feedback attached.
	feedback, err := s.LLM.GenerateFeedback(ctx, llm.FeedbackInput{
		Topic:                 strings.Join(session.SelectedTopics, ", "),
		TotalScore:            totalCorrect,
		TotalQuestions:        totalQuestions,
		CorrectCount:          totalCorrect,
		IncorrectCount:        totalQuestions - totalCorrect,
		Difficulty:            string(session.Difficulty),
		DifficultyPerformance: report.PerformanceSummary(breakdown),
	})
	if err != nil {
		return nil, err
	}

	result := &models.QuizResult{
		Username:       session.Username,
		SelectedTopics: session.SelectedTopics,
		TotalCorrect:   totalCorrect,
		TotalQuestions: totalQuestions,
		Feedback:       feedback,
		QuizStartedAt:  session.QuizStartedAt,
		Results:        session.TotalAnswers,
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, err
	}

	if err := s.Sessions.DeleteByToken(ctx, session.Token); err != nil {
		return nil, err
	}
	return result, nil
}

// Stop discards an in-progress session without storing anything.
func (s *AdaptiveService) Stop(ctx context.Context, token, username string) error {
	session, err := s.Sessions.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if session.Username != username {
		return ErrNotParticipant
	}
	return s.Sessions.DeleteByToken(ctx, token)
}
