package report

import (
	"fmt"
	"sort"
	"strings"

	"aiquizzer/internal/models"
)

// LevelScore tallies answers for one difficulty level.
type LevelScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// BreakdownByDifficulty tallies result rows per difficulty level.
func BreakdownByDifficulty(rows []models.ResultRow) map[string]LevelScore {
	scores := map[string]LevelScore{}
	for _, row := range rows {
		s := scores[row.Difficulty]
		s.Total++
		if row.UserAnswer == row.CorrectAnswer {
			s.Correct++
		}
		scores[row.Difficulty] = s
	}
	return scores
}

// PerformanceFeedback maps each level to an encouragement line banded on
// the percentage: 80 and up, 50 and up, below.
func PerformanceFeedback(scores map[string]LevelScore) map[string]string {
	feedback := make(map[string]string, len(scores))
	for level, s := range scores {
		if s.Total == 0 {
			continue
		}
		pct := float64(s.Correct) / float64(s.Total) * 100
		switch {
		case pct >= 80:
			feedback[level] = fmt.Sprintf("Excellent performance on %s level questions! Keep it up.", level)
		case pct >= 50:
			feedback[level] = fmt.Sprintf("Good job on %s level questions, but there's room for improvement.", level)
		default:
			feedback[level] = fmt.Sprintf("You struggled with %s level questions. Consider revisiting this topic for better understanding.", level)
		}
	}
	return feedback
}

// PerformanceSummary renders the breakdown as a one-line string for the
// feedback prompt, levels in a stable order.
func PerformanceSummary(scores map[string]LevelScore) string {
	levels := make([]string, 0, len(scores))
	for level := range scores {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		s := scores[level]
		parts = append(parts, fmt.Sprintf("%s %d/%d", level, s.Correct, s.Total))
	}
	if len(parts) == 0 {
		return "no answers recorded"
	}
	return strings.Join(parts, ", ")
}
