package application

import (
	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// GetBudget returns the user's budget, lazily creating one with defaults on
// first access.
func (s *BudgetService) GetBudget(userID string) (*domain.Budget, error) {
	return s.repo.GetOrCreate(userID)
}

// UpdateBudget validates and stores new ceilings for the five categories.
func (s *BudgetService) UpdateBudget(userID string, budget domain.Budget) error {
	budget.UserID = userID
	if err := budget.Validate(); err != nil {
		return err
	}
	// guarantees the row exists before the update
	if _, err := s.repo.GetOrCreate(userID); err != nil {
		return err
	}
	return s.repo.Update(budget)
}
