package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
	"github.com/mwielgosz/SpendTracker/internal/finance/infrastructure"
)

func TestGetBudget_CreatesDefaultsOnFirstAccess(t *testing.T) {
	repo := &infrastructure.MockBudgetRepository{}
	service := NewBudgetService(repo)

	budget, err := service.GetBudget("user-1")

	assert.NoError(t, err)
	assert.Equal(t, float64(domain.DefaultFoodBudget), budget.Food)
	assert.Equal(t, float64(domain.DefaultTransportBudget), budget.Transport)
	assert.Equal(t, 1, repo.Created)
}

func TestGetBudget_SecondAccessReusesRow(t *testing.T) {
	repo := &infrastructure.MockBudgetRepository{}
	service := NewBudgetService(repo)

	first, err := service.GetBudget("user-1")
	assert.NoError(t, err)
	second, err := service.GetBudget("user-1")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.Created)
}

func TestUpdateBudget_PersistsNewCeilings(t *testing.T) {
	repo := &infrastructure.MockBudgetRepository{}
	service := NewBudgetService(repo)

	err := service.UpdateBudget("user-1", domain.Budget{Food: 600, Transport: 100, Study: 50, Entertainment: 25, Others: 10})
	assert.NoError(t, err)

	budget, err := service.GetBudget("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 600.0, budget.Food)
	assert.Equal(t, 10.0, budget.Others)
}

func TestUpdateBudget_RejectsNegativeCeiling(t *testing.T) {
	repo := &infrastructure.MockBudgetRepository{}
	service := NewBudgetService(repo)

	err := service.UpdateBudget("user-1", domain.Budget{Food: -1})

	assert.True(t, financeErrors.IsValidationError(err))
	assert.Equal(t, 0, repo.Created)
}
