package interfaces

import (
	"net/http"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type HistoryHandler struct {
	expenseService ExpenseServiceInterface
	incomeService  IncomeServiceInterface
	respondJSON    respondJSONFunc
	respondError   respondErrorFunc
}

func NewHistoryHandler(expenseService ExpenseServiceInterface, incomeService IncomeServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *HistoryHandler {
	return &HistoryHandler{
		expenseService: expenseService,
		incomeService:  incomeService,
		respondJSON:    respondJSON,
		respondError:   respondError,
	}
}

// GetHistory lists the user's transactions. The category filter narrows
// expenses only; the search term matches descriptions of both kinds.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	expenses, err := h.expenseService.ListExpenses(userID, category, search)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve history")
		return
	}
	incomes, err := h.incomeService.ListIncomes(userID, search)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve history")
		return
	}
	categories, err := h.expenseService.ListCategories(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve history")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"expenses":           expenses,
			"incomes":            incomes,
			"categories":         categories,
			"expense_categories": domain.ExpenseCategories,
			"income_sources":     domain.IncomeSources,
		},
	})
}
