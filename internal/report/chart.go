package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// CorrectIncorrectPie renders the two-slice results pie chart as PNG
// bytes. A slice with zero answers is dropped rather than drawn at zero
// width, which the chart library rejects.
func CorrectIncorrectPie(correct, incorrect int) ([]byte, error) {
	if correct+incorrect == 0 {
		return nil, fmt.Errorf("no answers to chart")
	}

	var values []chart.Value
	if correct > 0 {
		values = append(values, chart.Value{
			Value: float64(correct),
			Label: fmt.Sprintf("Correct (%d)", correct),
		})
	}
	if incorrect > 0 {
		values = append(values, chart.Value{
			Value: float64(incorrect),
			Label: fmt.Sprintf("Incorrect (%d)", incorrect),
		})
	}

	pie := chart.PieChart{
		Width:  400,
		Height: 400,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
