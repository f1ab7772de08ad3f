package application

import (
	"sort"
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type DailyPoint struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type CategorySummary struct {
	Category  string  `json:"category"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// DashboardReport carries every aggregate the dashboard view needs for one
// user and period.
type DashboardReport struct {
	Period               domain.Period      `json:"period"`
	TotalExpense         float64            `json:"total_expense"`
	TotalIncome          float64            `json:"total_income"`
	Balance              float64            `json:"balance"`
	TopExpenseCategories []CategoryAmount   `json:"top_expense_categories"`
	CategoryTotals       []CategoryAmount   `json:"category_totals"`
	SourceTotals         []CategoryAmount   `json:"source_totals"`
	OverBudget           map[string]float64 `json:"over_budget"`
	CategorySummary      []CategorySummary  `json:"category_summary"`
	ExpenseSeries        []DailyPoint       `json:"expense_series"`
	IncomeSeries         []DailyPoint       `json:"income_series"`
	PeriodBuckets        []CategoryAmount   `json:"period_buckets"`
}

type ReportService struct {
	expenseRepo domain.ExpenseRepository
	incomeRepo  domain.IncomeRepository
	budgetRepo  domain.BudgetRepository
	now         func() time.Time
}

func NewReportService(expenseRepo domain.ExpenseRepository, incomeRepo domain.IncomeRepository, budgetRepo domain.BudgetRepository) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		budgetRepo:  budgetRepo,
		now:         time.Now,
	}
}

// BuildDashboard fetches the user's raw records, applies the period filter and
// computes every aggregate. A missing budget row is created with defaults
// before the comparison runs.
func (s *ReportService) BuildDashboard(userID string, period domain.Period) (*DashboardReport, error) {
	expenses, err := s.expenseRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	incomes, err := s.incomeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgetRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filteredExpenses := FilterExpenses(expenses, period, now)
	filteredIncomes := FilterIncomes(incomes, period, now)

	categoryTotals := CategoryTotals(filteredExpenses)
	sourceTotals := SourceTotals(filteredIncomes)

	totalExpense := SumExpenses(filteredExpenses)
	totalIncome := SumIncomes(filteredIncomes)

	return &DashboardReport{
		Period:               period,
		TotalExpense:         totalExpense,
		TotalIncome:          totalIncome,
		Balance:              totalIncome - totalExpense,
		TopExpenseCategories: TopCategories(categoryTotals, 3),
		CategoryTotals:       sortedCategoryAmounts(categoryTotals),
		SourceTotals:         sortedCategoryAmounts(sourceTotals),
		OverBudget:           OverBudget(categoryTotals, budget),
		CategorySummary:      BudgetComparison(categoryTotals, budget),
		ExpenseSeries:        DailyExpenseSeries(filteredExpenses),
		IncomeSeries:         DailyIncomeSeries(filteredIncomes),
		PeriodBuckets:        PeriodBuckets(filteredExpenses, period),
	}, nil
}

// FilterExpenses keeps expenses dated on or after the period's lower bound.
func FilterExpenses(expenses []domain.Expense, period domain.Period, now time.Time) []domain.Expense {
	start, bounded := period.Start(now)
	if !bounded {
		return expenses
	}
	var filtered []domain.Expense
	for _, e := range expenses {
		if !dayIn(e.Date, start.Location()).Before(start) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FilterIncomes keeps incomes dated on or after the period's lower bound.
func FilterIncomes(incomes []domain.Income, period domain.Period, now time.Time) []domain.Income {
	start, bounded := period.Start(now)
	if !bounded {
		return incomes
	}
	var filtered []domain.Income
	for _, i := range incomes {
		if !dayIn(i.Date, start.Location()).Before(start) {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

func SumExpenses(expenses []domain.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func SumIncomes(incomes []domain.Income) float64 {
	total := 0.0
	for _, i := range incomes {
		total += i.Amount
	}
	return total
}

// CategoryTotals sums expense amounts per category.
func CategoryTotals(expenses []domain.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// SourceTotals sums income amounts per source.
func SourceTotals(incomes []domain.Income) map[string]float64 {
	totals := make(map[string]float64)
	for _, i := range incomes {
		totals[i.Source] += i.Amount
	}
	return totals
}

// TopCategories returns the n largest categories by summed amount. Ties break
// by category name ascending so the ranking is reproducible.
func TopCategories(totals map[string]float64, n int) []CategoryAmount {
	ranked := sortedCategoryAmounts(totals)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func sortedCategoryAmounts(totals map[string]float64) []CategoryAmount {
	amounts := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		amounts = append(amounts, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(amounts, func(i, j int) bool {
		if amounts[i].Amount != amounts[j].Amount {
			return amounts[i].Amount > amounts[j].Amount
		}
		return amounts[i].Category < amounts[j].Category
	})
	return amounts
}

// OverBudget reports each of the five budget categories whose spent amount
// exceeds its ceiling, mapped to the excess. Categories outside the fixed
// budget list never appear here.
func OverBudget(totals map[string]float64, budget *domain.Budget) map[string]float64 {
	over := make(map[string]float64)
	for category, ceiling := range budget.Ceilings() {
		if spent := totals[category]; spent > ceiling {
			over[category] = spent - ceiling
		}
	}
	return over
}

// BudgetComparison reports spent vs ceiling for the five budget categories,
// in their canonical order. Remaining may be negative.
func BudgetComparison(totals map[string]float64, budget *domain.Budget) []CategorySummary {
	ceilings := budget.Ceilings()
	summary := make([]CategorySummary, 0, len(domain.BudgetCategories))
	for _, category := range domain.BudgetCategories {
		spent := totals[category]
		summary = append(summary, CategorySummary{
			Category:  category,
			Budget:    ceilings[category],
			Spent:     spent,
			Remaining: ceilings[category] - spent,
		})
	}
	return summary
}

// DailyExpenseSeries groups expenses by calendar date, summed and sorted
// ascending. Used for trend rendering.
func DailyExpenseSeries(expenses []domain.Expense) []DailyPoint {
	byDay := make(map[time.Time]float64)
	for _, e := range expenses {
		byDay[truncateToDay(e.Date)] += e.Amount
	}
	return sortedDailyPoints(byDay)
}

// DailyIncomeSeries is DailyExpenseSeries for incomes.
func DailyIncomeSeries(incomes []domain.Income) []DailyPoint {
	byDay := make(map[time.Time]float64)
	for _, i := range incomes {
		byDay[truncateToDay(i.Date)] += i.Amount
	}
	return sortedDailyPoints(byDay)
}

// PeriodBuckets groups filtered expenses into bar-chart buckets: Monday-anchored
// weeks for the weekly view, months for the monthly, yearly and all views, and
// single days for the daily view.
func PeriodBuckets(expenses []domain.Expense, period domain.Period) []CategoryAmount {
	labelFor := func(date time.Time) string {
		switch period {
		case domain.PeriodWeekly:
			offset := (int(date.Weekday()) + 6) % 7
			return truncateToDay(date).AddDate(0, 0, -offset).Format("2006-01-02")
		case domain.PeriodMonthly, domain.PeriodYearly, domain.PeriodAll:
			// sortable month label
			return date.Format("2006-01")
		default:
			return date.Format("2006-01-02")
		}
	}

	buckets := make(map[string]float64)
	for _, e := range expenses {
		buckets[labelFor(e.Date)] += e.Amount
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]CategoryAmount, 0, len(labels))
	for _, label := range labels {
		out = append(out, CategoryAmount{Category: label, Amount: buckets[label]})
	}
	return out
}

func sortedDailyPoints(byDay map[time.Time]float64) []DailyPoint {
	points := make([]DailyPoint, 0, len(byDay))
	for day, amount := range byDay {
		points = append(points, DailyPoint{Date: day, Amount: amount})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayIn rebuilds t's calendar date at midnight in loc. Record dates come back
// from DATE columns as UTC midnight while the period bound is built in the
// server's location, so bound checks must compare calendar days, not instants.
func dayIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
