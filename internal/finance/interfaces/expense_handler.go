package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	CreateExpense(expense *domain.Expense) error
	UpdateExpense(actingUserID string, expense domain.Expense) error
	DeleteExpense(actingUserID string, expenseID int) error
	ListExpenses(userID, category, search string) ([]domain.Expense, error)
	ListCategories(userID string) ([]string, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewExpenseHandler(service ExpenseServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *ExpenseHandler {
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type expenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// parseDate accepts an ISO calendar date or, when empty, reports a zero time
// so the service defaults it to today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, financeErrors.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func (h *ExpenseHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense := domain.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	}
	if err := h.service.CreateExpense(&expense); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense added.",
		"data":    expense,
	})
}

func (h *ExpenseHandler) EditExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense := domain.Expense{
		ID:          expenseID,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	}
	if err := h.service.UpdateExpense(userID, expense); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense updated.",
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := h.service.DeleteExpense(userID, expenseID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense deleted.",
	})
}
