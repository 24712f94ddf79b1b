package service

import (
	"context"

	"aiquizzer/internal/models"
	"aiquizzer/internal/report"
	"aiquizzer/internal/repository"
)

type ReportService struct {
	Results *repository.ResultRepository
}

func NewReportService(results *repository.ResultRepository) *ReportService {
	return &ReportService{Results: results}
}

// ResultView is one historical quiz result with its per-difficulty
// breakdown and the banded encouragement lines attached.
type ResultView struct {
	models.QuizResult
	DifficultyBreakdown map[string]report.LevelScore `json:"difficulty_breakdown"`
	DifficultyFeedback  map[string]string            `json:"difficulty_feedback"`
}

func (s *ReportService) ResultsFor(ctx context.Context, username string) ([]ResultView, error) {
	results, err := s.Results.FindByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	views := make([]ResultView, 0, len(results))
	for _, r := range results {
		breakdown := report.BreakdownByDifficulty(r.Results)
		views = append(views, ResultView{
			QuizResult:          r,
			DifficultyBreakdown: breakdown,
			DifficultyFeedback:  report.PerformanceFeedback(breakdown),
		})
	}
	return views, nil
}

// ExportPDF renders one of the caller's results as a PDF. Results belong
// to the user who took the quiz; anyone else gets a not-participant error.
func (s *ReportService) ExportPDF(ctx context.Context, resultID, username string) ([]byte, error) {
	result, err := s.Results.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.Username != username {
		return nil, ErrNotParticipant
	}
	return report.BuildResultPDF(result)
}
