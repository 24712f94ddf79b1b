package service

import (
	"context"
	"errors"
	"time"

	"aiquizzer/internal/llm"
	"aiquizzer/internal/models"
	"aiquizzer/internal/repository"
)

var ErrAlreadyAttempted = errors.New("quiz already attempted")

type QuizService struct {
	Quizzes  *repository.QuizRepository
	Attempts *repository.AttemptRepository
	LLM      *llm.Client
}

func NewQuizService(quizzes *repository.QuizRepository, attempts *repository.AttemptRepository, client *llm.Client) *QuizService {
	return &QuizService{Quizzes: quizzes, Attempts: attempts, LLM: client}
}

// GenerateDraft produces scenario MCQ sets for admin curation. Nothing is
// stored; the admin edits the draft and saves it through SaveQuiz.
func (s *QuizService) GenerateDraft(ctx context.Context, topic, difficulty string) ([]models.ScenarioSet, error) {
	return s.LLM.GenerateQuestions(ctx, []string{topic}, difficulty)
}

type SaveQuizRequest struct {
	SelectedTopic string       `json:"selected_topic" binding:"required"`
	Difficulty    string       `json:"difficulty" binding:"required"`
	MCQs          []models.MCQ `json:"mcqs" binding:"required"`
}

func (s *QuizService) SaveQuiz(ctx context.Context, createdBy string, req SaveQuizRequest) (*models.Quiz, error) {
	if len(req.MCQs) == 0 {
		return nil, errors.New("quiz has no questions")
	}
	quiz := &models.Quiz{
		SelectedTopic:  req.SelectedTopic,
		Difficulty:     req.Difficulty,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
		TotalQuestions: len(req.MCQs),
		MCQs:           req.MCQs,
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// QuizListing is a quiz card for the dashboard: no questions, plus whether
// the caller already attempted it.
type QuizListing struct {
	ID             string `json:"id"`
	SelectedTopic  string `json:"selected_topic"`
	Difficulty     string `json:"difficulty"`
	TotalQuestions int    `json:"total_questions"`
	Attempted      bool   `json:"attempted"`
}

func (s *QuizService) ListForUser(ctx context.Context, username string) ([]QuizListing, error) {
	quizzes, err := s.Quizzes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]QuizListing, 0, len(quizzes))
	for _, q := range quizzes {
		attempt, err := s.Attempts.FindByQuizAndUser(ctx, q.ID, username)
		if err != nil {
			return nil, err
		}
		listings = append(listings, QuizListing{
			ID:             q.ID,
			SelectedTopic:  q.SelectedTopic,
			Difficulty:     q.Difficulty,
			TotalQuestions: q.TotalQuestions,
			Attempted:      attempt != nil,
		})
	}
	return listings, nil
}

// GetForAttempt serves the quiz with answers stripped. A user who already
// attempted it is turned away here, before any answers are shown again.
func (s *QuizService) GetForAttempt(ctx context.Context, quizID, username string) (*models.Quiz, error) {
	attempt, err := s.Attempts.FindByQuizAndUser(ctx, quizID, username)
	if err != nil {
		return nil, err
	}
	if attempt != nil {
		return nil, ErrAlreadyAttempted
	}
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	quiz.MCQs = models.Sanitize(quiz.MCQs)
	return quiz, nil
}

// SubmitAttempt grades and persists one attempt. The one-attempt rule is
// an existence check only; two racing submissions can both pass it and the
// store keeps both (last-writer-wins semantics, no unique index).
func (s *QuizService) SubmitAttempt(ctx context.Context, quizID, username string, selected []*string) (*models.Attempt, error) {
	prior, err := s.Attempts.FindByQuizAndUser(ctx, quizID, username)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		return nil, ErrAlreadyAttempted
	}

	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	answers, correct := models.Grade(quiz.MCQs, selected)
	attempt := &models.Attempt{
		QuizID:              quiz.ID,
		AttemptedBy:         username,
		AttemptedAt:         time.Now(),
		Answers:             answers,
		CorrectAnswersCount: correct,
		TotalQuestions:      len(answers),
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}
