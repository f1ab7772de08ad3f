package application

import (
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type ExpenseService struct {
	repo domain.ExpenseRepository
	now  func() time.Time
}

func NewExpenseService(repo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo, now: time.Now}
}

// CreateExpense validates and stores a new expense for the acting user. A zero
// date defaults to today.
func (s *ExpenseService) CreateExpense(expense *domain.Expense) error {
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Save(expense)
}

// UpdateExpense replaces the stored record after verifying the acting user
// owns it. An owner mismatch rejects the operation and leaves the record
// unchanged.
func (s *ExpenseService) UpdateExpense(actingUserID string, expense domain.Expense) error {
	existing, err := s.repo.FindByID(expense.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return financeErrors.ErrNotRecordOwner
	}
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	expense.UserID = existing.UserID
	if err := expense.Validate(); err != nil {
		return err
	}
	return s.repo.Update(expense)
}

// DeleteExpense removes the record after the ownership check.
func (s *ExpenseService) DeleteExpense(actingUserID string, expenseID int) error {
	existing, err := s.repo.FindByID(expenseID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return financeErrors.ErrNotRecordOwner
	}
	return s.repo.Delete(expenseID)
}

// ListExpenses returns the user's expenses, optionally narrowed by exact
// category and case-insensitive description search.
func (s *ExpenseService) ListExpenses(userID, category, search string) ([]domain.Expense, error) {
	expenses, err := s.repo.Search(userID, category, search)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *ExpenseService) ListCategories(userID string) ([]string, error) {
	categories, err := s.repo.DistinctCategories(userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []string{}, nil
	}
	return categories, nil
}
