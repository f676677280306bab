package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

// TransactionLogRepository persists the append-only audit trail. Entries are
// only ever inserted or bulk-cleared together with the inventory itself.
type TransactionLogRepository interface {
	Append(ctx context.Context, entry *models.TransactionLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*models.TransactionLogEntry, error)
	DeleteAll(ctx context.Context) error
}

type transactionLogRepo struct {
	db DBTX
}

func NewTransactionLogRepo(db DBTX) TransactionLogRepository {
	return &transactionLogRepo{db: db}
}

func (r *transactionLogRepo) Append(ctx context.Context, entry *models.TransactionLogEntry) error {
	query := `
		INSERT INTO transaction_log (action, item_id, item_name, quantity_change, previous_quantity, new_quantity, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		entry.Action, entry.ItemID, entry.ItemName,
		entry.QuantityChange, entry.PreviousQuantity, entry.NewQuantity,
	)
	if err != nil {
		return fmt.Errorf("append transaction log: %w", err)
	}
	return nil
}

func (r *transactionLogRepo) ListRecent(ctx context.Context, limit int) ([]*models.TransactionLogEntry, error) {
	query := `
		SELECT id, action, item_id, item_name, quantity_change, previous_quantity, new_quantity, timestamp
		FROM transaction_log
		ORDER BY timestamp DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *transactionLogRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM transaction_log`); err != nil {
		return fmt.Errorf("delete all transactions: %w", err)
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]*models.TransactionLogEntry, error) {
	var entries []*models.TransactionLogEntry
	for rows.Next() {
		entry := &models.TransactionLogEntry{}
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.ItemID, &entry.ItemName,
			&entry.QuantityChange, &entry.PreviousQuantity, &entry.NewQuantity, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
