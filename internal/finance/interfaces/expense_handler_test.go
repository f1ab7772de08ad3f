package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

func authenticatedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(context.WithValue(req.Context(), "userID", "user-1"))
}

func TestAddExpense_Success(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/add-expense", `{"amount": 42.5, "category": "Food", "date": "2024-01-05", "description": "groceries"}`)
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.AddExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, 1, len(mockService.created))
	assert.Equal(t, "user-1", mockService.created[0].UserID)
	assert.Equal(t, 42.5, mockService.created[0].Amount)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Expense added.", response["message"])
}

func TestAddExpense_NonPositiveAmount(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/add-expense", `{"amount": -5, "category": "Food"}`)
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.AddExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, mockService.created)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Amount must be a positive number", response["message"])
}

func TestAddExpense_InvalidDate(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/add-expense", `{"amount": 10, "category": "Food", "date": "05/01/2024"}`)
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.AddExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Date must be in YYYY-MM-DD format", response["message"])
}

func TestAddExpense_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/add-expense", strings.NewReader(`{"amount": 10, "category": "Food"}`))
	w := httptest.NewRecorder()

	handler := NewExpenseHandler(&MockExpenseService{}, respondJSON, respondError)
	handler.AddExpense(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestEditExpense_NotOwner(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/edit-expense/7", `{"amount": 10, "category": "Food"}`)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{err: financeErrors.ErrNotRecordOwner}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.EditExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, financeErrors.ErrNotRecordOwner.Error(), response["message"])
}

func TestEditExpense_InvalidID(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/edit-expense/abc", `{"amount": 10, "category": "Food"}`)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler := NewExpenseHandler(&MockExpenseService{}, respondJSON, respondError)
	handler.EditExpense(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/delete-expense/99", "")
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{err: financeErrors.ErrExpenseNotFound}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.DeleteExpense(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestDeleteExpense_Success(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/delete-expense/3", "")
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.DeleteExpense(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, []int{3}, mockService.deleted)
}
