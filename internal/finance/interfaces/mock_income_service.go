package interfaces

import (
	"errors"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type MockIncomeService struct {
	incomes    []domain.Income
	created    []domain.Income
	updated    []domain.Income
	deleted    []int
	err        error
	shouldFail bool
}

func (m *MockIncomeService) CreateIncome(income *domain.Income) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	if err := income.Validate(); err != nil {
		return err
	}
	income.ID = len(m.created) + 1
	m.created = append(m.created, *income)
	return nil
}

func (m *MockIncomeService) UpdateIncome(actingUserID string, income domain.Income) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, income)
	return nil
}

func (m *MockIncomeService) DeleteIncome(actingUserID string, incomeID int) error {
	if m.shouldFail {
		return errors.New("db error")
	}
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, incomeID)
	return nil
}

func (m *MockIncomeService) ListIncomes(userID, search string) ([]domain.Income, error) {
	if m.shouldFail {
		return nil, errors.New("db error")
	}
	return m.incomes, nil
}
