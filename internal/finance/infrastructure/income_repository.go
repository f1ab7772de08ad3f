package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mwielgosz/SpendTracker/internal/finance/domain"
	financeErrors "github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Save(income *domain.Income) error {
	query := `
		INSERT INTO incomes (user_id, amount, source, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query, income.UserID, income.Amount, income.Source, income.Date, income.Description).Scan(&income.ID)
	if err != nil {
		return fmt.Errorf("could not save income: %v", err)
	}
	return nil
}

func (r *IncomeRepository) FindByUser(userID string) ([]domain.Income, error) {
	query := `
		SELECT id, user_id, amount, source, date, description
		FROM incomes
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list incomes: %v", err)
	}
	defer rows.Close()

	return scanIncomes(rows)
}

func (r *IncomeRepository) FindByID(incomeID int) (*domain.Income, error) {
	query := `
		SELECT id, user_id, amount, source, date, description
		FROM incomes
		WHERE id = $1
	`
	var income domain.Income
	var description sql.NullString
	err := r.db.QueryRow(query, incomeID).Scan(&income.ID, &income.UserID, &income.Amount, &income.Source, &income.Date, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrIncomeNotFound
		}
		return nil, fmt.Errorf("could not find income: %v", err)
	}
	income.Description = description.String
	return &income, nil
}

func (r *IncomeRepository) Update(income domain.Income) error {
	query := `
		UPDATE incomes
		SET amount = $1, source = $2, date = $3, description = $4
		WHERE id = $5
	`
	result, err := r.db.Exec(query, income.Amount, income.Source, income.Date, income.Description, income.ID)
	if err != nil {
		return fmt.Errorf("could not update income: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update income: %v", err)
	}
	if affected == 0 {
		return financeErrors.ErrIncomeNotFound
	}
	return nil
}

func (r *IncomeRepository) Delete(incomeID int) error {
	result, err := r.db.Exec(`DELETE FROM incomes WHERE id = $1`, incomeID)
	if err != nil {
		return fmt.Errorf("could not delete income: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete income: %v", err)
	}
	if affected == 0 {
		return financeErrors.ErrIncomeNotFound
	}
	return nil
}

func (r *IncomeRepository) Search(userID, search string) ([]domain.Income, error) {
	query := `
		SELECT id, user_id, amount, source, date, description
		FROM incomes
		WHERE user_id = $1
		  AND ($2 = '' OR description ILIKE '%' || $2 || '%')
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query, userID, search)
	if err != nil {
		return nil, fmt.Errorf("could not search incomes: %v", err)
	}
	defer rows.Close()

	return scanIncomes(rows)
}

func scanIncomes(rows *sql.Rows) ([]domain.Income, error) {
	var incomes []domain.Income
	for rows.Next() {
		var income domain.Income
		var description sql.NullString
		if err := rows.Scan(&income.ID, &income.UserID, &income.Amount, &income.Source, &income.Date, &description); err != nil {
			return nil, fmt.Errorf("could not scan income: %v", err)
		}
		income.Description = description.String
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}
