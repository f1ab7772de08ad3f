package interfaces

import (
	"errors"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type MockBudgetService struct {
	budget     *domain.Budget
	updated    []domain.Budget
	err        error
	shouldFail bool
}

func (m *MockBudgetService) GetBudget(userID string) (*domain.Budget, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	if m.budget != nil {
		return m.budget, nil
	}
	budget := domain.DefaultBudget(userID)
	return &budget, nil
}

func (m *MockBudgetService) UpdateBudget(userID string, budget domain.Budget) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	if err := budget.Validate(); err != nil {
		return err
	}
	m.updated = append(m.updated, budget)
	return nil
}
