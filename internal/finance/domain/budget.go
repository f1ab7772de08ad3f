package domain

import (
	"github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryStudy         = "Study"
	CategoryEntertainment = "Entertainment"
	CategoryOthers        = "Others"
)

// BudgetCategories are the five categories a monthly ceiling is tracked for.
var BudgetCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryStudy,
	CategoryEntertainment,
	CategoryOthers,
}

// ExpenseCategories is the canonical list offered in the UI. The category
// column itself stays free-text.
var ExpenseCategories = []string{
	"Food", "Transport", "Study", "Entertainment",
	"Utilities", "Rent", "Shopping", "Others",
}

// IncomeSources is the canonical list of income sources offered in the UI.
var IncomeSources = []string{
	"Salary", "Freelance", "Investments", "Gifts", "Others",
}

const (
	DefaultFoodBudget          = 500
	DefaultTransportBudget     = 200
	DefaultStudyBudget         = 300
	DefaultEntertainmentBudget = 150
	DefaultOthersBudget        = 100
)

type BudgetRepository interface {
	// GetOrCreate returns the user's budget, inserting one with defaults if
	// absent. The insert must be atomic: concurrent first calls for the same
	// user yield a single row.
	GetOrCreate(userID string) (*Budget, error)
	Update(budget Budget) error
}

type Budget struct {
	ID            int     `json:"id"`
	UserID        string  `json:"user_id"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Study         float64 `json:"study"`
	Entertainment float64 `json:"entertainment"`
	Others        float64 `json:"others"`
}

// DefaultBudget returns a budget with the default ceiling per category.
func DefaultBudget(userID string) Budget {
	return Budget{
		UserID:        userID,
		Food:          DefaultFoodBudget,
		Transport:     DefaultTransportBudget,
		Study:         DefaultStudyBudget,
		Entertainment: DefaultEntertainmentBudget,
		Others:        DefaultOthersBudget,
	}
}

// Ceilings maps each budget category to its ceiling amount.
func (b *Budget) Ceilings() map[string]float64 {
	return map[string]float64{
		CategoryFood:          b.Food,
		CategoryTransport:     b.Transport,
		CategoryStudy:         b.Study,
		CategoryEntertainment: b.Entertainment,
		CategoryOthers:        b.Others,
	}
}

func (b *Budget) Validate() error {
	for category, ceiling := range b.Ceilings() {
		if ceiling < 0 {
			return errors.NewValidationError("Budget for " + category + " must not be negative")
		}
	}
	return nil
}
