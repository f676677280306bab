package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

// DBTX is the query surface shared by pgxpool.Pool and pgx.Tx, so the same
// repository code runs standalone or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type InventoryRepository interface {
	// GetByName looks an item up case-insensitively. Returns (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*models.InventoryItem, error)
	// GetByID returns (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	Create(ctx context.Context, name string, quantity int) (*models.InventoryItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	// List returns every item, most recently updated first, newest id breaking ties.
	List(ctx context.Context) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	OutOfStock(ctx context.Context) ([]*models.InventoryItem, error)
	Search(ctx context.Context, term string) ([]*models.InventoryItem, error)
	Stats(ctx context.Context, lowStockThreshold int) (*models.InventoryStats, error)
	DeleteAll(ctx context.Context) error
}

type inventoryRepo struct {
	db DBTX
}

func NewInventoryRepo(db DBTX) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) GetByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		WHERE LOWER(name) = LOWER($1)
	`
	item := &models.InventoryItem{}
	err := r.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return item, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		WHERE id = $1
	`
	item := &models.InventoryItem{}
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return item, nil
}

func (r *inventoryRepo) Create(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	query := `
		INSERT INTO inventory (name, quantity, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, quantity, created_at, updated_at
	`
	item := &models.InventoryItem{}
	err := r.db.QueryRow(ctx, query, name, quantity).Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (r *inventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	query := `
		UPDATE inventory
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update quantity: no item with id %d", id)
	}
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM inventory WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		ORDER BY updated_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) LowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		WHERE quantity > 0 AND quantity < $1
		ORDER BY quantity ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) OutOfStock(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		WHERE quantity <= 0
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list out of stock: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) Search(ctx context.Context, term string) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, created_at, updated_at
		FROM inventory
		WHERE name ILIKE $1
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) Stats(ctx context.Context, lowStockThreshold int) (*models.InventoryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(quantity), 0),
			COUNT(*) FILTER (WHERE quantity > 0 AND quantity < $1),
			COUNT(*) FILTER (WHERE quantity <= 0)
		FROM inventory
	`
	stats := &models.InventoryStats{}
	err := r.db.QueryRow(ctx, query, lowStockThreshold).Scan(
		&stats.TotalItems, &stats.TotalQuantity, &stats.LowStockCount, &stats.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return stats, nil
}

func (r *inventoryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM inventory`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
