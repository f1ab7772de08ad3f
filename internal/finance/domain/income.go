package domain

import (
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type IncomeRepository interface {
	Save(income *Income) error
	FindByUser(userID string) ([]Income, error)
	FindByID(incomeID int) (*Income, error)
	Update(income Income) error
	Delete(incomeID int) error
	Search(userID, search string) ([]Income, error)
}

type Income struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Source      string    `json:"source"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (i *Income) Validate() error {
	if i.Amount <= 0 {
		return errors.NewValidationError("Amount must be a positive number")
	}
	if i.Source == "" {
		return errors.NewValidationError("Source is required")
	}
	if len(i.Description) > 255 {
		return errors.NewValidationError("Description must be of length less than 255")
	}
	return nil
}
