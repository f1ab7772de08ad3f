package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LabeledValue is one slice of a pie chart or one bar of a bar chart.
type LabeledValue struct {
	Label string
	Value float64
}

// TimePoint is one daily sample of a time series.
type TimePoint struct {
	Date  time.Time
	Value float64
}

// Generator renders dashboard charts to PNG bytes. Every method degrades to an
// explicit "no data" placeholder when its input is empty.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Pie renders a share-per-label pie chart.
func (g *Generator) Pie(title string, values []LabeledValue) ([]byte, error) {
	if len(values) == 0 {
		return g.placeholder("No data")
	}

	total := 0.0
	for _, v := range values {
		total += v.Value
	}
	if total <= 0 {
		return g.placeholder("No data")
	}

	chartValues := make([]chart.Value, 0, len(values))
	for _, v := range values {
		chartValues = append(chartValues, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.1f%%)", v.Label, v.Value, v.Value/total*100),
			Value: v.Value,
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: chartValues,
		Background: chart.Style{
			Padding:   chart.Box{Top: 30, Left: 30, Right: 30, Bottom: 30},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// Bar renders one bar per label.
func (g *Generator) Bar(title string, values []LabeledValue) ([]byte, error) {
	if len(values) == 0 {
		return g.placeholder("No data")
	}

	bars := make([]chart.Value, 0, len(values))
	for _, v := range values {
		bars = append(bars, chart.Value{
			Label: v.Label,
			Value: v.Value,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(160),
			},
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    800,
		Height:   400,
		BarWidth: 50,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 30, Right: 30, Bottom: 30},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// Trend renders cumulative expense and income lines over time.
func (g *Generator) Trend(expenses, incomes []TimePoint) ([]byte, error) {
	series := make([]chart.Series, 0, 2)
	if s, ok := cumulativeSeries("Expenses", expenses, chart.ColorRed); ok {
		series = append(series, s)
	}
	if s, ok := cumulativeSeries("Incomes", incomes, chart.ColorGreen); ok {
		series = append(series, s)
	}
	if len(series) == 0 {
		return g.placeholder("No data")
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding:   chart.Box{Top: 30, Left: 30, Right: 30, Bottom: 30},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// cumulativeSeries turns daily points into a running-total line. A single
// point is extended into a flat one-day line, since a line needs two points
// to draw and dropping real data would make the series vanish from the chart.
func cumulativeSeries(name string, points []TimePoint, color drawing.Color) (chart.TimeSeries, bool) {
	if len(points) == 0 {
		return chart.TimeSeries{}, false
	}
	if len(points) == 1 {
		points = []TimePoint{points[0], {Date: points[0].Date.AddDate(0, 0, 1), Value: 0}}
	}
	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	running := 0.0
	for i, p := range points {
		running += p.Value
		xValues[i] = p.Date
		yValues[i] = running
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
	}, true
}

// placeholder renders a single grey slice labeled with the message, so empty
// datasets produce a visible image instead of an error or a blank canvas.
func (g *Generator) placeholder(message string) ([]byte, error) {
	pie := chart.PieChart{
		Width:  600,
		Height: 400,
		Values: []chart.Value{
			{
				Label: message,
				Value: 1,
				Style: chart.Style{
					FillColor:   chart.ColorLightGray,
					StrokeColor: chart.ColorLightGray,
				},
			},
		},
		Background: chart.Style{
			Padding:   chart.Box{Top: 30, Left: 30, Right: 30, Bottom: 30},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}
