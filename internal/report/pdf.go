package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"aiquizzer/internal/models"

	"github.com/go-pdf/fpdf"
)

// BuildResultPDF renders a stored quiz result as a single PDF: title,
// date, results summary, correct/incorrect pie chart, then the feedback
// fields in fixed order. Layout beyond automatic page breaks is left to
// the library.
func BuildResultPDF(result *models.QuizResult) ([]byte, error) {
	chartPNG, err := CorrectIncorrectPie(result.TotalCorrect, result.TotalQuestions-result.TotalCorrect)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Quiz Results, Feedback, and Analytics", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.Ln(10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Topics: %s", strings.Join(result.SelectedTopics, ", ")), "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Quiz Results", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total Correct: %d/%d", result.TotalCorrect, result.TotalQuestions), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Score: %d out of %d", result.TotalCorrect, result.TotalQuestions), "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Quiz Analytics", "", 1, "L", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("results-pie", opts, bytes.NewReader(chartPNG))
	pdf.Ln(5)
	pdf.ImageOptions("results-pie", pdf.GetX(), pdf.GetY(), 100, 0, true, opts, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Feedback", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)

	if fb := result.Feedback; fb != nil {
		pdf.MultiCell(0, 10, fmt.Sprintf("Overall Performance: %s", fb.OverallPerformance), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Correct Answers: %v", fb.CorrectVsIncorrect.CorrectCount), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Incorrect Answers: %v", fb.CorrectVsIncorrect.IncorrectCount), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Analysis of Incorrect Answers: %s", fb.CorrectVsIncorrect.Analysis), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Areas for Improvement: %s", fb.AreasOfImprovement), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Topic-Specific Feedback: %s", fb.TopicSpecificFeedback), "", "L", false)
		pdf.MultiCell(0, 10, fmt.Sprintf("Next Steps: %s", fb.NextSteps), "", "L", false)
	} else {
		pdf.MultiCell(0, 10, "No feedback was generated for this quiz.", "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
