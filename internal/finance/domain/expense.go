package domain

import (
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type ExpenseRepository interface {
	Save(expense *Expense) error
	FindByUser(userID string) ([]Expense, error)
	FindByID(expenseID int) (*Expense, error)
	Update(expense Expense) error
	Delete(expenseID int) error
	Search(userID, category, search string) ([]Expense, error)
	DistinctCategories(userID string) ([]string, error)
}

type Expense struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return errors.NewValidationError("Amount must be a positive number")
	}
	if e.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if len(e.Description) > 255 {
		return errors.NewValidationError("Description must be of length less than 255")
	}
	return nil
}
