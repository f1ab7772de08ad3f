package application

import (
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type IncomeService struct {
	repo domain.IncomeRepository
	now  func() time.Time
}

func NewIncomeService(repo domain.IncomeRepository) *IncomeService {
	return &IncomeService{repo: repo, now: time.Now}
}

func (s *IncomeService) CreateIncome(income *domain.Income) error {
	if income.Date.IsZero() {
		income.Date = s.now()
	}
	if err := income.Validate(); err != nil {
		return err
	}
	return s.repo.Save(income)
}

func (s *IncomeService) UpdateIncome(actingUserID string, income domain.Income) error {
	existing, err := s.repo.FindByID(income.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return financeErrors.ErrNotRecordOwner
	}
	if income.Date.IsZero() {
		income.Date = s.now()
	}
	income.UserID = existing.UserID
	if err := income.Validate(); err != nil {
		return err
	}
	return s.repo.Update(income)
}

func (s *IncomeService) DeleteIncome(actingUserID string, incomeID int) error {
	existing, err := s.repo.FindByID(incomeID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return financeErrors.ErrNotRecordOwner
	}
	return s.repo.Delete(incomeID)
}

func (s *IncomeService) ListIncomes(userID, search string) ([]domain.Income, error) {
	incomes, err := s.repo.Search(userID, search)
	if err != nil {
		return nil, err
	}
	if incomes == nil {
		return []domain.Income{}, nil
	}
	return incomes, nil
}
