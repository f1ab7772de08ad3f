package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/SpendTracker/internal/finance/application"
	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

func TestGetDashboard_DefaultPeriod(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/dashboard/", "")
	w := httptest.NewRecorder()

	mockService := &MockReportService{report: &application.DashboardReport{
		Period:       domain.PeriodMonthly,
		TotalExpense: 150,
		TotalIncome:  500,
		Balance:      350,
		OverBudget:   map[string]float64{"Food": 30},
	}}
	handler := NewDashboardHandler(mockService, &MockChartGenerator{}, respondJSON, respondError)
	handler.GetDashboard(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data struct {
			Report application.DashboardReport `json:"report"`
			Charts map[string]string           `json:"charts"`
		} `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 350.0, response.Data.Report.Balance)
	assert.Equal(t, 30.0, response.Data.Report.OverBudget["Food"])

	for _, key := range []string{"expense_categories", "income_sources", "trends", "expense_trend", "over_budget", "top_expenses"} {
		assert.True(t, strings.HasPrefix(response.Data.Charts[key], "data:image/png;base64,"), "chart %s missing data URI", key)
	}
}

func TestGetDashboard_InvalidPeriod(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/dashboard/?period=fortnightly", "")
	w := httptest.NewRecorder()

	handler := NewDashboardHandler(&MockReportService{}, &MockChartGenerator{}, respondJSON, respondError)
	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetDashboard_RenderFailure(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/dashboard/?period=weekly", "")
	w := httptest.NewRecorder()

	handler := NewDashboardHandler(&MockReportService{}, &MockChartGenerator{shouldFail: true}, respondJSON, respondError)
	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}
