package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type BudgetServiceInterface interface {
	GetBudget(userID string) (*domain.Budget, error)
	UpdateBudget(userID string, budget domain.Budget) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *BudgetHandler {
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	budget, err := h.service.GetBudget(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Food          float64 `json:"food"`
		Transport     float64 `json:"transport"`
		Study         float64 `json:"study"`
		Entertainment float64 `json:"entertainment"`
		Others        float64 `json:"others"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget := domain.Budget{
		UserID:        userID,
		Food:          req.Food,
		Transport:     req.Transport,
		Study:         req.Study,
		Entertainment: req.Entertainment,
		Others:        req.Others,
	}
	if err := h.service.UpdateBudget(userID, budget); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget updated.",
	})
}
