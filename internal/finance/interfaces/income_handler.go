package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
)

type IncomeServiceInterface interface {
	CreateIncome(income *domain.Income) error
	UpdateIncome(actingUserID string, income domain.Income) error
	DeleteIncome(actingUserID string, incomeID int) error
	ListIncomes(userID, search string) ([]domain.Income, error)
}

type IncomeHandler struct {
	service      IncomeServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewIncomeHandler(service IncomeServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *IncomeHandler {
	return &IncomeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type incomeRequest struct {
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (h *IncomeHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	income := domain.Income{
		UserID:      userID,
		Amount:      req.Amount,
		Source:      req.Source,
		Date:        date,
		Description: req.Description,
	}
	if err := h.service.CreateIncome(&income); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create income")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Income added.",
		"data":    income,
	})
}

func (h *IncomeHandler) EditIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	incomeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income id")
		return
	}

	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	income := domain.Income{
		ID:          incomeID,
		Amount:      req.Amount,
		Source:      req.Source,
		Date:        date,
		Description: req.Description,
	}
	if err := h.service.UpdateIncome(userID, income); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update income")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income updated.",
	})
}

func (h *IncomeHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	incomeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid income id")
		return
	}

	if err := h.service.DeleteIncome(userID, incomeID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete income")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income deleted.",
	})
}
