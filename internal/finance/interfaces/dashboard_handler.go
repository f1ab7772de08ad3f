package interfaces

import (
	"encoding/base64"
	"net/http"
	"sort"

	"github.com/mwielgosz/SpendTracker/internal/charts"
	"github.com/mwielgosz/SpendTracker/internal/finance/application"
	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type ReportServiceInterface interface {
	BuildDashboard(userID string, period domain.Period) (*application.DashboardReport, error)
}

type ChartGeneratorInterface interface {
	Pie(title string, values []charts.LabeledValue) ([]byte, error)
	Bar(title string, values []charts.LabeledValue) ([]byte, error)
	Trend(expenses, incomes []charts.TimePoint) ([]byte, error)
}

type DashboardHandler struct {
	service      ReportServiceInterface
	generator    ChartGeneratorInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewDashboardHandler(service ReportServiceInterface, generator ChartGeneratorInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		generator:    generator,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to build dashboard")
		return
	}

	report, err := h.service.BuildDashboard(userID, period)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to build dashboard")
		return
	}

	chartImages, err := h.renderCharts(report)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to render charts")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"report": report,
			"charts": chartImages,
		},
	})
}

func (h *DashboardHandler) renderCharts(report *application.DashboardReport) (map[string]string, error) {
	categoryPie, err := h.generator.Pie("Expenses by Category", toLabeledValues(report.CategoryTotals))
	if err != nil {
		return nil, err
	}
	sourcePie, err := h.generator.Pie("Income by Source", toLabeledValues(report.SourceTotals))
	if err != nil {
		return nil, err
	}
	trend, err := h.generator.Trend(toTimePoints(report.ExpenseSeries), toTimePoints(report.IncomeSeries))
	if err != nil {
		return nil, err
	}
	periodBar, err := h.generator.Bar("Expenses Over Time", toLabeledValues(report.PeriodBuckets))
	if err != nil {
		return nil, err
	}
	overBudgetBar, err := h.generator.Bar("Categories Over Budget", overBudgetValues(report.OverBudget))
	if err != nil {
		return nil, err
	}
	topBar, err := h.generator.Bar("Top Expense Categories", toLabeledValues(report.TopExpenseCategories))
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"expense_categories": dataURI(categoryPie),
		"income_sources":     dataURI(sourcePie),
		"trends":             dataURI(trend),
		"expense_trend":      dataURI(periodBar),
		"over_budget":        dataURI(overBudgetBar),
		"top_expenses":       dataURI(topBar),
	}, nil
}

func toLabeledValues(amounts []application.CategoryAmount) []charts.LabeledValue {
	values := make([]charts.LabeledValue, 0, len(amounts))
	for _, a := range amounts {
		values = append(values, charts.LabeledValue{Label: a.Category, Value: a.Amount})
	}
	return values
}

func toTimePoints(points []application.DailyPoint) []charts.TimePoint {
	values := make([]charts.TimePoint, 0, len(points))
	for _, p := range points {
		values = append(values, charts.TimePoint{Date: p.Date, Value: p.Amount})
	}
	return values
}

func overBudgetValues(over map[string]float64) []charts.LabeledValue {
	categories := make([]string, 0, len(over))
	for category := range over {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	values := make([]charts.LabeledValue, 0, len(categories))
	for _, category := range categories {
		values = append(values, charts.LabeledValue{Label: category, Value: over[category]})
	}
	return values
}

// dataURI wraps PNG bytes so the client can embed the chart directly in an
// img tag.
func dataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
