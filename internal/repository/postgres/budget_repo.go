package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `
	id, user_id, name, amount, start_date, end_date, category_id,
	description, last_notification_percentage, created_at`

// Create inserts a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, name, amount, start_date, end_date, category_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(context.Background(), query,
		budget.UserID,
		budget.Name,
		budget.Amount,
		budget.StartDate,
		budget.EndDate,
		budget.CategoryID,
		budget.Description,
	).Scan(&budget.ID, &budget.CreatedAt)
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// GetByID retrieves a budget by id, scoped to its owner
func (r *BudgetRepository) GetByID(userID uuid.UUID, id int32) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND id = $2`

	budget := &domain.Budget{}
	err := scanBudget(r.pool.QueryRow(context.Background(), query, userID, id), budget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetByUser retrieves all budgets for a user, newest window first
func (r *BudgetRepository) GetByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY start_date DESC, id`

	return r.queryMany(query, userID)
}

// GetByUserCoveringDate retrieves budgets whose window contains the date
func (r *BudgetRepository) GetByUserCoveringDate(userID uuid.UUID, date time.Time) ([]*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date DESC, id`

	return r.queryMany(query, userID, date)
}

// Update rewrites a budget row, including its notification state
func (r *BudgetRepository) Update(budget *domain.Budget) (*domain.Budget, error) {
	query := `
		UPDATE budgets
		SET name = $1, amount = $2, start_date = $3, end_date = $4,
		    category_id = $5, description = $6, last_notification_percentage = $7
		WHERE user_id = $8 AND id = $9`

	tag, err := r.pool.Exec(context.Background(), query,
		budget.Name,
		budget.Amount,
		budget.StartDate,
		budget.EndDate,
		budget.CategoryID,
		budget.Description,
		budget.LastNotificationPercentage,
		budget.UserID,
		budget.ID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

// Delete removes a budget, scoped to its owner
func (r *BudgetRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) queryMany(query string, args ...interface{}) ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		budget := &domain.Budget{}
		if err := scanBudget(rows, budget); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func scanBudget(row pgx.Row, b *domain.Budget) error {
	return row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Amount,
		&b.StartDate,
		&b.EndDate,
		&b.CategoryID,
		&b.Description,
		&b.LastNotificationPercentage,
		&b.CreatedAt,
	)
}
