package reporting

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// histogramBuckets is fixed: ten equal-width buckets over the observed
// salary range.
const histogramBuckets = 10

func renderSalaryHistogram(salaries []float64) ([]byte, error) {
	min, max := salaries[0], salaries[0]
	for _, s := range salaries {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	counts := make([]int, histogramBuckets)
	width := (max - min) / histogramBuckets
	if width == 0 {
		// all salaries identical: everything lands in the first bucket
		counts[0] = len(salaries)
	} else {
		for _, s := range salaries {
			i := int((s - min) / width)
			if i >= histogramBuckets {
				i = histogramBuckets - 1
			}
			counts[i]++
		}
	}

	bars := make([]chart.Value, histogramBuckets)
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c),
			Label: fmt.Sprintf("%.0f", min+width*float64(i)),
		}
	}

	graph := chart.BarChart{
		Title:    "Salary Distribution",
		Width:    600,
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDepartmentPie(counts []DepartmentCount) ([]byte, error) {
	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		values = append(values, chart.Value{
			Value: float64(c.Count),
			Label: c.Name,
		})
	}

	graph := chart.PieChart{
		Title:  "Employees by Department",
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
