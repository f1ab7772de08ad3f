package infrastructure

import (
	"strings"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

// MockExpenseRepository is an in-memory ExpenseRepository used by service and
// handler tests.
type MockExpenseRepository struct {
	Expenses []domain.Expense
	nextID   int
	Err      error
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Expense
	for _, e := range m.Expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) FindByID(expenseID int) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Expenses {
		if e.ID == expenseID {
			found := e
			return &found, nil
		}
	}
	return nil, financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Expenses {
		if e.ID == expense.ID {
			m.Expenses[i] = expense
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Delete(expenseID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Expenses {
		if e.ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Search(userID, category, search string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Expense
	for _, e := range m.Expenses {
		if e.UserID != userID {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(search)) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *MockExpenseRepository) DistinctCategories(userID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	seen := map[string]bool{}
	var categories []string
	for _, e := range m.Expenses {
		if e.UserID == userID && !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories, nil
}

// MockIncomeRepository is an in-memory IncomeRepository used by tests.
type MockIncomeRepository struct {
	Incomes []domain.Income
	nextID  int
	Err     error
}

func (m *MockIncomeRepository) Save(income *domain.Income) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	income.ID = m.nextID
	m.Incomes = append(m.Incomes, *income)
	return nil
}

func (m *MockIncomeRepository) FindByUser(userID string) ([]domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Income
	for _, i := range m.Incomes {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *MockIncomeRepository) FindByID(incomeID int) (*domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, i := range m.Incomes {
		if i.ID == incomeID {
			found := i
			return &found, nil
		}
	}
	return nil, financeErrors.ErrIncomeNotFound
}

func (m *MockIncomeRepository) Update(income domain.Income) error {
	if m.Err != nil {
		return m.Err
	}
	for i, in := range m.Incomes {
		if in.ID == income.ID {
			m.Incomes[i] = income
			return nil
		}
	}
	return financeErrors.ErrIncomeNotFound
}

func (m *MockIncomeRepository) Delete(incomeID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, in := range m.Incomes {
		if in.ID == incomeID {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrIncomeNotFound
}

func (m *MockIncomeRepository) Search(userID, search string) ([]domain.Income, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Income
	for _, i := range m.Incomes {
		if i.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(i.Description), strings.ToLower(search)) {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

// MockBudgetRepository is an in-memory BudgetRepository used by tests. It
// counts creations so tests can assert the lazy insert happens exactly once.
type MockBudgetRepository struct {
	Budgets map[string]*domain.Budget
	Created int
	Err     error
}

func (m *MockBudgetRepository) GetOrCreate(userID string) (*domain.Budget, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Budgets == nil {
		m.Budgets = make(map[string]*domain.Budget)
	}
	if budget, ok := m.Budgets[userID]; ok {
		copied := *budget
		return &copied, nil
	}
	budget := domain.DefaultBudget(userID)
	budget.ID = len(m.Budgets) + 1
	m.Budgets[userID] = &budget
	m.Created++
	copied := budget
	return &copied, nil
}

func (m *MockBudgetRepository) Update(budget domain.Budget) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Budgets == nil {
		m.Budgets = make(map[string]*domain.Budget)
	}
	existing, ok := m.Budgets[budget.UserID]
	if !ok {
		m.Budgets[budget.UserID] = &budget
		return nil
	}
	budget.ID = existing.ID
	m.Budgets[budget.UserID] = &budget
	return nil
}

var _ domain.ExpenseRepository = (*MockExpenseRepository)(nil)
var _ domain.IncomeRepository = (*MockIncomeRepository)(nil)
var _ domain.BudgetRepository = (*MockBudgetRepository)(nil)
