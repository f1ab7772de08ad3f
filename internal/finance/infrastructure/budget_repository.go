package infrastructure

import (
	"database/sql"
	"fmt"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetOrCreate relies on the unique constraint on budgets.user_id: the insert
// is a no-op when a row already exists, so concurrent first visits by the
// same user still end up with exactly one budget row.
func (r *BudgetRepository) GetOrCreate(userID string) (*domain.Budget, error) {
	insert := `
		INSERT INTO budgets (user_id, food, transport, study, entertainment, others)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`
	defaults := domain.DefaultBudget(userID)
	_, err := r.db.Exec(insert, userID, defaults.Food, defaults.Transport, defaults.Study, defaults.Entertainment, defaults.Others)
	if err != nil {
		return nil, fmt.Errorf("could not create budget: %v", err)
	}

	query := `
		SELECT id, user_id, food, transport, study, entertainment, others
		FROM budgets
		WHERE user_id = $1
	`
	var budget domain.Budget
	err = r.db.QueryRow(query, userID).Scan(&budget.ID, &budget.UserID, &budget.Food, &budget.Transport, &budget.Study, &budget.Entertainment, &budget.Others)
	if err != nil {
		return nil, fmt.Errorf("could not find budget: %v", err)
	}
	return &budget, nil
}

func (r *BudgetRepository) Update(budget domain.Budget) error {
	query := `
		UPDATE budgets
		SET food = $1, transport = $2, study = $3, entertainment = $4, others = $5
		WHERE user_id = $6
	`
	_, err := r.db.Exec(query, budget.Food, budget.Transport, budget.Study, budget.Entertainment, budget.Others, budget.UserID)
	if err != nil {
		return fmt.Errorf("could not update budget: %v", err)
	}
	return nil
}

var _ domain.BudgetRepository = (*BudgetRepository)(nil)
var _ domain.ExpenseRepository = (*ExpenseRepository)(nil)
var _ domain.IncomeRepository = (*IncomeRepository)(nil)
