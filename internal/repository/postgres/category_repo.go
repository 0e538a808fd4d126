package postgres

import (
	"context"
	"errors"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create inserts a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, type, color, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(context.Background(), query,
		category.Name, string(category.Type), category.Color, category.Description,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by id
func (r *CategoryRepository) GetByID(id int32) (*domain.Category, error) {
	query := `
		SELECT id, name, type, color, description, created_at
		FROM categories
		WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// GetByName retrieves a category by its unique name
func (r *CategoryRepository) GetByName(name string) (*domain.Category, error) {
	query := `
		SELECT id, name, type, color, description, created_at
		FROM categories
		WHERE name = $1`

	return r.scanOne(r.pool.QueryRow(context.Background(), query, name))
}

// GetAll retrieves all categories ordered by name
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	query := `
		SELECT id, name, type, color, description, created_at
		FROM categories
		ORDER BY name`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.Color, &category.Description, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update rewrites a category's mutable fields
func (r *CategoryRepository) Update(id int32, name string, color string, description *string) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, color = $2, description = $3
		WHERE id = $4
		RETURNING id, name, type, color, description, created_at`

	return r.scanOne(r.pool.QueryRow(context.Background(), query, name, color, description, id))
}

// Delete removes a category
func (r *CategoryRepository) Delete(id int32) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// HasTransactions reports whether any transaction references the category
func (r *CategoryRepository) HasTransactions(id int32) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) scanOne(row pgx.Row) (*domain.Category, error) {
	category := &domain.Category{}
	err := row.Scan(&category.ID, &category.Name, &category.Type, &category.Color, &category.Description, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
