package interfaces

import (
	"errors"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type MockExpenseService struct {
	expenses   []domain.Expense
	categories []string
	created    []domain.Expense
	updated    []domain.Expense
	deleted    []int
	err        error
	shouldFail bool
}

func (m *MockExpenseService) CreateExpense(expense *domain.Expense) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	if err := expense.Validate(); err != nil {
		return err
	}
	expense.ID = len(m.created) + 1
	m.created = append(m.created, *expense)
	return nil
}

func (m *MockExpenseService) UpdateExpense(actingUserID string, expense domain.Expense) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, expense)
	return nil
}

func (m *MockExpenseService) DeleteExpense(actingUserID string, expenseID int) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, expenseID)
	return nil
}

func (m *MockExpenseService) ListExpenses(userID, category, search string) ([]domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	filtered := make([]domain.Expense, 0, len(m.expenses))
	for _, e := range m.expenses {
		if category != "" && e.Category != category {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (m *MockExpenseService) ListCategories(userID string) ([]string, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	return m.categories, nil
}
