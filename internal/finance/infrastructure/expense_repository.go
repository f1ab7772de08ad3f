package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (user_id, amount, category, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query, expense.UserID, expense.Amount, expense.Category, expense.Date, expense.Description).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("could not save expense: %v", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, description
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list expenses: %v", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *ExpenseRepository) FindByID(expenseID int) (*domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, description
		FROM expenses
		WHERE id = $1
	`
	var expense domain.Expense
	var description sql.NullString
	err := r.db.QueryRow(query, expenseID).Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("could not find expense: %v", err)
	}
	expense.Description = description.String
	return &expense, nil
}

func (r *ExpenseRepository) Update(expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $1, category = $2, date = $3, description = $4
		WHERE id = $5
	`
	result, err := r.db.Exec(query, expense.Amount, expense.Category, expense.Date, expense.Description, expense.ID)
	if err != nil {
		return fmt.Errorf("could not update expense: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update expense: %v", err)
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(expenseID int) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("could not delete expense: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete expense: %v", err)
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Search(userID, category, search string) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, date, description
		FROM expenses
		WHERE user_id = $1
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR description ILIKE '%' || $3 || '%')
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query, userID, category, search)
	if err != nil {
		return nil, fmt.Errorf("could not search expenses: %v", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *ExpenseRepository) DistinctCategories(userID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT category FROM expenses WHERE user_id = $1 ORDER BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %v", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("could not list categories: %v", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func scanExpenses(rows *sql.Rows) ([]domain.Expense, error) {
	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		var description sql.NullString
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Date, &description); err != nil {
			return nil, fmt.Errorf("could not scan expense: %v", err)
		}
		expense.Description = description.String
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}
