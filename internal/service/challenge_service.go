package service

import (
	"context"
	"errors"
	"time"

	"aiquizzer/internal/llm"
	"aiquizzer/internal/models"
	"aiquizzer/internal/repository"
)

var (
	ErrNotParticipant    = errors.New("user is not part of this challenge")
	ErrSideAlreadyPlayed = errors.New("user already completed this challenge")
)

type ChallengeService struct {
	Challenges *repository.ChallengeRepository
	Quizzes    *repository.ChallengeQuizRepository
	Attempts   *repository.AttemptRepository
	Users      *repository.UserRepository
	LLM        *llm.Client
}

func NewChallengeService(
	challenges *repository.ChallengeRepository,
	quizzes *repository.ChallengeQuizRepository,
	attempts *repository.AttemptRepository,
	users *repository.UserRepository,
	client *llm.Client,
) *ChallengeService {
	return &ChallengeService{
		Challenges: challenges,
		Quizzes:    quizzes,
		Attempts:   attempts,
		Users:      users,
		LLM:        client,
	}
}

// Create generates one shared quiz and opens a pending challenge against
// the opponent. A generation failure aborts the whole operation; nothing
// is stored.
func (s *ChallengeService) Create(ctx context.Context, challenger, opponent, topic, difficulty string) (*models.Challenge, error) {
	if challenger == opponent {
		return nil, errors.New("cannot challenge yourself")
	}
	if _, err := s.Users.FindByUsername(ctx, opponent); err != nil {
		return nil, errors.New("opponent not found")
	}

	sets, err := s.LLM.GenerateQuestions(ctx, []string{topic}, difficulty)
	if err != nil {
		return nil, err
	}

	quiz := &models.ChallengeQuiz{
		SelectedTopic:  topic,
		Difficulty:     difficulty,
		CreatedAt:      time.Now(),
		TotalQuestions: models.CountQuestions(sets),
		QuizData:       sets,
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}

	challenge := &models.Challenge{
		Challenger:  challenger,
		Opponent:    opponent,
		QuizID:      quiz.ID,
		Status:      models.ChallengeStatusPending,
		CompletedBy: []string{},
		CreatedAt:   time.Now(),
	}
	if err := s.Challenges.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// PendingChallenge is a pending entry for the caller, joined with the quiz
// topic and difficulty for display.
type PendingChallenge struct {
	ID         string    `json:"id"`
	Challenger string    `json:"challenger"`
	Opponent   string    `json:"opponent"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PendingFor lists pending challenges involving username, excluding the
// ones they already completed (waiting on the other side).
func (s *ChallengeService) PendingFor(ctx context.Context, username string) ([]PendingChallenge, error) {
	challenges, err := s.Challenges.FindByStatusFor(ctx, username, models.ChallengeStatusPending)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingChallenge, 0, len(challenges))
	for _, c := range challenges {
		if c.CompletedByUser(username) {
			continue
		}
		entry := PendingChallenge{
			ID:         c.ID,
			Challenger: c.Challenger,
			Opponent:   c.Opponent,
			CreatedAt:  c.CreatedAt,
		}
		if quiz, err := s.Quizzes.FindByID(ctx, c.QuizID); err == nil {
			entry.Topic = quiz.SelectedTopic
			entry.Difficulty = quiz.Difficulty
		}
		pending = append(pending, entry)
	}
	return pending, nil
}

// QuizForAttempt returns the shared quiz with answers stripped, refusing
// callers who are not a participant or already played their side.
func (s *ChallengeService) QuizForAttempt(ctx context.Context, challengeID, username string) (*models.ChallengeQuiz, error) {
	challenge, err := s.Challenges.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.Involves(username) {
		return nil, ErrNotParticipant
	}
	if challenge.CompletedByUser(username) {
		return nil, ErrSideAlreadyPlayed
	}
	quiz, err := s.Quizzes.FindByID(ctx, challenge.QuizID)
	if err != nil {
		return nil, err
	}
	quiz.QuizData = models.SanitizeSets(quiz.QuizData)
	return quiz, nil
}

// SubmitAttempt grades the caller's side, stores the attempt and advances
// the challenge: the caller joins completed_by and the status flips to
// completed only once both sides are in. The write happens in either
// branch.
func (s *ChallengeService) SubmitAttempt(ctx context.Context, challengeID, username string, selected []*string) (*models.Attempt, *models.Challenge, error) {
	challenge, err := s.Challenges.FindByID(ctx, challengeID)
	if err != nil {
		return nil, nil, err
	}
	if !challenge.Involves(username) {
		return nil, nil, ErrNotParticipant
	}
	if challenge.CompletedByUser(username) {
		return nil, nil, ErrSideAlreadyPlayed
	}

	quiz, err := s.Quizzes.FindByID(ctx, challenge.QuizID)
	if err != nil {
		return nil, nil, err
	}

	var allQuestions []models.MCQ
	for _, set := range quiz.QuizData {
		allQuestions = append(allQuestions, set.Questions...)
	}
	answers, correct := models.Grade(allQuestions, selected)

	attempt := &models.Attempt{
		QuizID:              quiz.ID,
		AttemptedBy:         username,
		AttemptedAt:         time.Now(),
		Answers:             answers,
		CorrectAnswersCount: correct,
		TotalQuestions:      len(answers),
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, nil, err
	}

	challenge.RecordCompletion(username)
	if err := s.Challenges.SetCompletion(ctx, challenge.ID, challenge.CompletedBy, challenge.Status); err != nil {
		return nil, nil, err
	}
	return attempt, challenge, nil
}

// ChallengeResult is a completed challenge with both scores and the
// outcome.
type ChallengeResult struct {
	ID              string                  `json:"id"`
	Topic           string                  `json:"topic"`
	Challenger      string                  `json:"challenger"`
	Opponent        string                  `json:"opponent"`
	ChallengerScore int                     `json:"challenger_score"`
	OpponentScore   int                     `json:"opponent_score"`
	ChallengerTotal int                     `json:"challenger_total"`
	OpponentTotal   int                     `json:"opponent_total"`
	Outcome         models.ChallengeOutcome `json:"outcome"`
	Incomplete      bool                    `json:"incomplete,omitempty"`
}

// ResultsFor lists completed challenges involving username with the winner
// or an explicit tie. A completed challenge missing an attempt record is
// reported as incomplete rather than guessed at.
func (s *ChallengeService) ResultsFor(ctx context.Context, username string) ([]ChallengeResult, error) {
	challenges, err := s.Challenges.FindByStatusFor(ctx, username, models.ChallengeStatusCompleted)
	if err != nil {
		return nil, err
	}

	results := make([]ChallengeResult, 0, len(challenges))
	for _, c := range challenges {
		result := ChallengeResult{
			ID:         c.ID,
			Challenger: c.Challenger,
			Opponent:   c.Opponent,
		}
		if quiz, err := s.Quizzes.FindByID(ctx, c.QuizID); err == nil {
			result.Topic = quiz.SelectedTopic
		}

		attempts, err := s.Attempts.FindByQuiz(ctx, c.QuizID)
		if err != nil {
			return nil, err
		}
		var challengerAttempt, opponentAttempt *models.Attempt
		for i := range attempts {
			switch attempts[i].AttemptedBy {
			case c.Challenger:
				challengerAttempt = &attempts[i]
			case c.Opponent:
				opponentAttempt = &attempts[i]
			}
		}

		if challengerAttempt == nil || opponentAttempt == nil {
			result.Incomplete = true
		} else {
			result.ChallengerScore = challengerAttempt.CorrectAnswersCount
			result.ChallengerTotal = challengerAttempt.TotalQuestions
			result.OpponentScore = opponentAttempt.CorrectAnswersCount
			result.OpponentTotal = opponentAttempt.TotalQuestions
			result.Outcome = models.DecideOutcome(&c, result.ChallengerScore, result.OpponentScore)
		}
		results = append(results, result)
	}
	return results, nil
}
