package postgres

import (
	"context"
	"errors"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

const goalColumns = `
	id, user_id, name, target_amount, current_amount, target_date, status,
	description, last_notification_percentage, created_at, completed_at`

// Create inserts a new goal
func (r *GoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, target_date, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		string(goal.Status),
		goal.Description,
	).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// GetByID retrieves a goal by id, scoped to its owner
func (r *GoalRepository) GetByID(userID uuid.UUID, id int32) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND id = $2`

	goal := &domain.Goal{}
	err := scanGoal(r.pool.QueryRow(context.Background(), query, userID, id), goal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// GetByUser retrieves all goals for a user ordered by target date
func (r *GoalRepository) GetByUser(userID uuid.UUID) ([]*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY target_date, id`

	return r.queryMany(query, userID)
}

// GetByUserAndStatus retrieves a user's goals in the given status
func (r *GoalRepository) GetByUserAndStatus(userID uuid.UUID, status domain.GoalStatus) ([]*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND status = $2
		ORDER BY target_date, id`

	return r.queryMany(query, userID, string(status))
}

// CountByUserAndStatus counts a user's goals in the given status
func (r *GoalRepository) CountByUserAndStatus(userID uuid.UUID, status domain.GoalStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM goals WHERE user_id = $1 AND status = $2`,
		userID, string(status),
	).Scan(&count)
	return count, err
}

// SearchByName finds goals whose name contains the keyword,
// case-insensitively
func (r *GoalRepository) SearchByName(userID uuid.UUID, keyword string) ([]*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY target_date, id`

	return r.queryMany(query, userID, keyword)
}

// Update rewrites a goal row, including progress and notification state
func (r *GoalRepository) Update(goal *domain.Goal) (*domain.Goal, error) {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, target_date = $4,
		    status = $5, description = $6, last_notification_percentage = $7, completed_at = $8
		WHERE user_id = $9 AND id = $10`

	tag, err := r.pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		string(goal.Status),
		goal.Description,
		goal.LastNotificationPercentage,
		goal.CompletedAt,
		goal.UserID,
		goal.ID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}

// Delete removes a goal, scoped to its owner
func (r *GoalRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM goals WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) queryMany(query string, args ...interface{}) ([]*domain.Goal, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal := &domain.Goal{}
		if err := scanGoal(rows, goal); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func scanGoal(row pgx.Row, g *domain.Goal) error {
	return row.Scan(
		&g.ID,
		&g.UserID,
		&g.Name,
		&g.TargetAmount,
		&g.CurrentAmount,
		&g.TargetDate,
		&g.Status,
		&g.Description,
		&g.LastNotificationPercentage,
		&g.CreatedAt,
		&g.CompletedAt,
	)
}
