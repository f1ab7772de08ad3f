package interfaces

import (
	"errors"

	"github.com/mwielgosz/SpendTracker/internal/charts"
	"github.com/mwielgosz/SpendTracker/internal/finance/application"
	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type MockReportService struct {
	report     *application.DashboardReport
	shouldFail bool
}

func (m *MockReportService) BuildDashboard(userID string, period domain.Period) (*application.DashboardReport, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	if m.report != nil {
		return m.report, nil
	}
	return &application.DashboardReport{Period: period, OverBudget: map[string]float64{}}, nil
}

// MockChartGenerator returns a fixed PNG payload so tests can assert the
// data URI wrapping without rasterizing anything.
type MockChartGenerator struct {
	png        []byte
	shouldFail bool
}

func (m *MockChartGenerator) Pie(title string, values []charts.LabeledValue) ([]byte, error) {
	return m.render()
}

func (m *MockChartGenerator) Bar(title string, values []charts.LabeledValue) ([]byte, error) {
	return m.render()
}

func (m *MockChartGenerator) Trend(expenses, incomes []charts.TimePoint) ([]byte, error) {
	return m.render()
}

func (m *MockChartGenerator) render() ([]byte, error) {
	if m.shouldFail {
		return nil, errors.New("render error")
	}
	if m.png != nil {
		return m.png, nil
	}
	return []byte("png"), nil
}
