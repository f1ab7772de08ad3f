package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	"github.com/mwielgosz/SpendTracker/internal/finance/infrastructure"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildDashboard_MonthlyScenario(t *testing.T) {
	expenseRepo := &infrastructure.MockExpenseRepository{Expenses: []domain.Expense{
		{ID: 1, UserID: "user-1", Amount: 100, Category: "Food", Date: day(2024, time.January, 5)},
		{ID: 2, UserID: "user-1", Amount: 50, Category: "Food", Date: day(2024, time.January, 20)},
		{ID: 3, UserID: "user-1", Amount: 30, Category: "Transport", Date: day(2024, time.January, 10)},
		{ID: 4, UserID: "user-1", Amount: 999, Category: "Food", Date: day(2023, time.December, 28)},
		{ID: 5, UserID: "user-2", Amount: 777, Category: "Food", Date: day(2024, time.January, 5)},
	}}
	incomeRepo := &infrastructure.MockIncomeRepository{Incomes: []domain.Income{
		{ID: 1, UserID: "user-1", Amount: 3000, Source: "Salary", Date: day(2024, time.January, 1)},
	}}
	budgetRepo := &infrastructure.MockBudgetRepository{}
	budget, err := budgetRepo.GetOrCreate("user-1")
	assert.NoError(t, err)
	budget.Food = 120
	assert.NoError(t, budgetRepo.Update(*budget))

	service := NewReportService(expenseRepo, incomeRepo, budgetRepo)
	service.now = func() time.Time { return day(2024, time.January, 25) }

	report, err := service.BuildDashboard("user-1", domain.PeriodMonthly)
	assert.NoError(t, err)

	assert.Equal(t, 180.0, report.TotalExpense)
	assert.Equal(t, 3000.0, report.TotalIncome)
	assert.Equal(t, 2820.0, report.Balance)

	assert.Equal(t, []CategoryAmount{
		{Category: "Food", Amount: 150},
		{Category: "Transport", Amount: 30},
	}, report.TopExpenseCategories)

	assert.Equal(t, map[string]float64{"Food": 30}, report.OverBudget)
}

func TestBuildDashboard_CreatesBudgetOnce(t *testing.T) {
	expenseRepo := &infrastructure.MockExpenseRepository{}
	incomeRepo := &infrastructure.MockIncomeRepository{}
	budgetRepo := &infrastructure.MockBudgetRepository{}

	service := NewReportService(expenseRepo, incomeRepo, budgetRepo)

	_, err := service.BuildDashboard("user-1", domain.PeriodAll)
	assert.NoError(t, err)
	_, err = service.BuildDashboard("user-1", domain.PeriodAll)
	assert.NoError(t, err)

	assert.Equal(t, 1, budgetRepo.Created)
}

func TestFilterExpenses_Idempotent(t *testing.T) {
	now := day(2024, time.March, 15)
	expenses := []domain.Expense{
		{ID: 1, Amount: 10, Category: "Food", Date: day(2024, time.March, 1)},
		{ID: 2, Amount: 20, Category: "Food", Date: day(2024, time.February, 28)},
		{ID: 3, Amount: 30, Category: "Food", Date: day(2024, time.March, 15)},
	}

	once := FilterExpenses(expenses, domain.PeriodMonthly, now)
	twice := FilterExpenses(once, domain.PeriodMonthly, now)

	assert.Equal(t, once, twice)
	assert.Equal(t, 2, len(once))
}

func TestFilter_RecordDatesInDifferentLocation(t *testing.T) {
	// DATE columns scan back as UTC midnight. With a server clock west of
	// UTC, local midnight is after UTC midnight, so an instant comparison
	// would drop records dated today from the daily view and records dated
	// the 1st from the monthly view.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, loc)

	expenses := []domain.Expense{
		{ID: 1, Amount: 10, Category: "Food", Date: day(2024, time.January, 15)},
		{ID: 2, Amount: 20, Category: "Food", Date: day(2024, time.January, 1)},
		{ID: 3, Amount: 30, Category: "Food", Date: day(2023, time.December, 31)},
	}
	incomes := []domain.Income{
		{ID: 1, Amount: 3000, Source: "Salary", Date: day(2024, time.January, 1)},
	}

	daily := FilterExpenses(expenses, domain.PeriodDaily, now)
	assert.Equal(t, 1, len(daily))
	assert.Equal(t, 1, daily[0].ID)

	monthly := FilterExpenses(expenses, domain.PeriodMonthly, now)
	assert.Equal(t, 2, len(monthly))

	monthlyIncomes := FilterIncomes(incomes, domain.PeriodMonthly, now)
	assert.Equal(t, 1, len(monthlyIncomes))
}

func TestFilterExpenses_WeeklyStartsMonday(t *testing.T) {
	// 2024-03-15 is a Friday, so the week starts 2024-03-11.
	now := day(2024, time.March, 15)
	expenses := []domain.Expense{
		{ID: 1, Amount: 10, Category: "Food", Date: day(2024, time.March, 11)},
		{ID: 2, Amount: 20, Category: "Food", Date: day(2024, time.March, 10)},
	}

	filtered := FilterExpenses(expenses, domain.PeriodWeekly, now)

	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, 1, filtered[0].ID)
}

func TestFilterExpenses_AllKeepsEverything(t *testing.T) {
	expenses := []domain.Expense{
		{ID: 1, Amount: 10, Category: "Food", Date: day(1999, time.January, 1)},
		{ID: 2, Amount: 20, Category: "Food", Date: day(2024, time.March, 15)},
	}

	filtered := FilterExpenses(expenses, domain.PeriodAll, day(2024, time.March, 15))

	assert.Equal(t, expenses, filtered)
}

func TestTopCategories_TieBreaksByName(t *testing.T) {
	totals := map[string]float64{
		"Transport": 100,
		"Food":      100,
		"Rent":      500,
		"Shopping":  40,
	}

	top := TopCategories(totals, 3)

	assert.Equal(t, []CategoryAmount{
		{Category: "Rent", Amount: 500},
		{Category: "Food", Amount: 100},
		{Category: "Transport", Amount: 100},
	}, top)
}

func TestTopCategories_FewerThanN(t *testing.T) {
	totals := map[string]float64{"Food": 10}

	top := TopCategories(totals, 3)

	assert.Equal(t, 1, len(top))
}

func TestOverBudget_OnlyBudgetCategoriesAndStrictExcess(t *testing.T) {
	budget := domain.DefaultBudget("user-1")
	totals := map[string]float64{
		"Food":      domain.DefaultFoodBudget,      // exactly at the ceiling
		"Transport": domain.DefaultTransportBudget + 25,
		"Rent":      10000, // not a budget category
	}

	over := OverBudget(totals, &budget)

	assert.Equal(t, map[string]float64{"Transport": 25}, over)
}

func TestBudgetComparison_CanonicalOrder(t *testing.T) {
	budget := domain.DefaultBudget("user-1")
	totals := map[string]float64{"Food": 600}

	summary := BudgetComparison(totals, &budget)

	assert.Equal(t, len(domain.BudgetCategories), len(summary))
	for i, category := range domain.BudgetCategories {
		assert.Equal(t, category, summary[i].Category)
	}
	assert.Equal(t, -100.0, summary[0].Remaining)
}

func TestDailyExpenseSeries_SortedAndSummed(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: 10, Date: day(2024, time.January, 3)},
		{Amount: 5, Date: day(2024, time.January, 1)},
		{Amount: 15, Date: day(2024, time.January, 3)},
	}

	series := DailyExpenseSeries(expenses)

	assert.Equal(t, []DailyPoint{
		{Date: day(2024, time.January, 1), Amount: 5},
		{Date: day(2024, time.January, 3), Amount: 25},
	}, series)
}

func TestPeriodBuckets_MonthlyLabelsSortable(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: 10, Date: day(2023, time.December, 5)},
		{Amount: 20, Date: day(2024, time.February, 5)},
		{Amount: 30, Date: day(2024, time.February, 20)},
	}

	buckets := PeriodBuckets(expenses, domain.PeriodAll)

	assert.Equal(t, []CategoryAmount{
		{Category: "2023-12", Amount: 10},
		{Category: "2024-02", Amount: 50},
	}, buckets)
}

func TestPeriodBuckets_WeeklyAnchorsOnMonday(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: 10, Date: day(2024, time.March, 12)}, // Tuesday
		{Amount: 20, Date: day(2024, time.March, 14)}, // Thursday
	}

	buckets := PeriodBuckets(expenses, domain.PeriodWeekly)

	assert.Equal(t, []CategoryAmount{
		{Category: "2024-03-11", Amount: 30},
	}, buckets)
}
