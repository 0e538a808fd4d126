package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using
// PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `
	t.id, t.user_id, t.category_id, c.name, t.amount, t.type,
	t.description, t.notes, t.occurred_at, t.receipt_key, t.created_at`

// Create inserts a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, description, notes, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.CategoryID,
		transaction.Amount,
		string(transaction.Type),
		transaction.Description,
		transaction.Notes,
		transaction.OccurredAt,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r.GetByID(transaction.UserID, transaction.ID)
}

// GetByID retrieves a transaction by id, scoped to its owner
func (r *TransactionRepository) GetByID(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.id = $2`

	transaction := &domain.Transaction{}
	err := scanTransaction(r.pool.QueryRow(context.Background(), query, userID, id), transaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// GetByUser retrieves a user's transactions with optional filters, most
// recent first
func (r *TransactionRepository) GetByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1`)

	args := []interface{}{userID}
	if filters != nil {
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			fmt.Fprintf(&sb, " AND t.category_id = $%d", len(args))
		}
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			fmt.Fprintf(&sb, " AND t.occurred_at >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			fmt.Fprintf(&sb, " AND t.occurred_at <= $%d", len(args))
		}
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			fmt.Fprintf(&sb, " AND t.type = $%d", len(args))
		}
	}
	sb.WriteString(" ORDER BY t.occurred_at DESC, t.id DESC")

	rows, err := r.pool.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction := &domain.Transaction{}
		if err := scanTransaction(rows, transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// Update rewrites a transaction's fields, scoped to its owner
func (r *TransactionRepository) Update(userID uuid.UUID, id int32, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, type = $3, description = $4, notes = $5, occurred_at = $6
		WHERE user_id = $7 AND id = $8`

	tag, err := r.pool.Exec(context.Background(), query,
		data.CategoryID,
		data.Amount,
		string(data.Type),
		data.Description,
		data.Notes,
		data.OccurredAt,
		userID,
		id,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrTransactionNotFound
	}
	return r.GetByID(userID, id)
}

// Delete removes a transaction, scoped to its owner
func (r *TransactionRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM transactions WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// SetReceiptKey stores or clears the receipt object key for a transaction
func (r *TransactionRepository) SetReceiptKey(userID uuid.UUID, id int32, key *string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE transactions SET receipt_key = $1 WHERE user_id = $2 AND id = $3`, key, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row, t *domain.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.CategoryID,
		&t.CategoryName,
		&t.Amount,
		&t.Type,
		&t.Description,
		&t.Notes,
		&t.OccurredAt,
		&t.ReceiptKey,
		&t.CreatedAt,
	)
}
