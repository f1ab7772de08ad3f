package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2"
)

var pngHeader = []byte("\x89PNG")

func TestCumulativeSeries_RunningTotal(t *testing.T) {
	points := []TimePoint{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 10},
		{Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), Value: 5},
		{Date: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), Value: 20},
	}

	series, ok := cumulativeSeries("Expenses", points, chart.ColorRed)

	assert.True(t, ok)
	assert.Equal(t, []float64{10, 15, 35}, series.YValues)
}

func TestCumulativeSeries_SinglePointBecomesFlatLine(t *testing.T) {
	points := []TimePoint{
		{Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Value: 42},
	}

	series, ok := cumulativeSeries("Expenses", points, chart.ColorRed)

	assert.True(t, ok)
	assert.Equal(t, []float64{42, 42}, series.YValues)
	assert.True(t, series.XValues[1].After(series.XValues[0]))
}

func TestCumulativeSeries_Empty(t *testing.T) {
	_, ok := cumulativeSeries("Expenses", nil, chart.ColorRed)
	assert.False(t, ok)
}

func TestTrend_SingleExpenseDayStillRendered(t *testing.T) {
	g := NewGenerator()

	expenses := []TimePoint{
		{Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Value: 42},
	}
	incomes := []TimePoint{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 3000},
		{Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Value: 150},
	}

	png, err := g.Trend(expenses, incomes)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestPie_EmptyInputRendersPlaceholder(t *testing.T) {
	g := NewGenerator()

	png, err := g.Pie("Expenses by category", nil)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}
