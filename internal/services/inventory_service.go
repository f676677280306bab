package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/caching"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/repositories"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

// DB is the database handle the ledger needs: plain queries for reads plus
// transactions for units of work. Satisfied by *pgxpool.Pool and by pgxmock
// in tests.
type DB interface {
	repositories.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InventoryService is the inventory ledger. Every mutation pairs the item
// write with a transaction-log append inside one database transaction, so
// either both persist or neither does. Reads never take locks and never log.
type InventoryService interface {
	// Add increases an item's quantity, creating the item on first sight.
	Add(ctx context.Context, name string, quantity int) (*models.InventoryItem, error)
	// Remove decreases quantity. Fails with ErrItemNotFound or
	// InsufficientStockError without writing anything.
	Remove(ctx context.Context, name string, quantity int) (*models.InventoryItem, error)
	// SetQuantity sets the quantity to an absolute value (not a delta).
	SetQuantity(ctx context.Context, name string, quantity int) (*models.InventoryItem, error)
	// Get is a pure read; returns ErrItemNotFound when absent.
	Get(ctx context.Context, name string) (*models.InventoryItem, error)
	// List returns all items, most recently updated first, each annotated
	// with its stock status. threshold <= 0 means the configured default.
	List(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	OutOfStock(ctx context.Context) ([]*models.InventoryItem, error)
	Search(ctx context.Context, term string) ([]*models.InventoryItem, error)
	Stats(ctx context.Context) (*models.InventoryStats, error)
	Transactions(ctx context.Context, limit int) ([]*models.TransactionLogEntry, error)
	// DeleteByID removes the item row and logs the deletion; the log entry
	// keeps the name snapshot but loses the item id reference.
	DeleteByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	// ClearAll wipes both tables. Administrative and irreversible.
	ClearAll(ctx context.Context) error
}

type inventoryService struct {
	db                DB
	items             repositories.InventoryRepository
	logs              repositories.TransactionLogRepository
	cache             caching.CacheService
	log               *logger.Logger
	lowStockThreshold int
	transactionLimit  int
}

func NewInventoryService(db DB, cache caching.CacheService, log *logger.Logger, lowStockThreshold, transactionLimit int) InventoryService {
	return &inventoryService{
		db:                db,
		items:             repositories.NewInventoryRepo(db),
		logs:              repositories.NewTransactionLogRepo(db),
		cache:             cache,
		log:               log,
		lowStockThreshold: lowStockThreshold,
		transactionLimit:  transactionLimit,
	}
}

// inTx runs fn with repositories bound to a single transaction, committing
// on success and rolling back every partial write on failure.
func (s *inventoryService) inTx(ctx context.Context, fn func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(repositories.NewInventoryRepo(tx), repositories.NewTransactionLogRepo(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *inventoryService) Add(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	var out *models.InventoryItem
	err := s.inTx(ctx, func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error {
		existing, err := items.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing == nil {
			created, err := items.Create(ctx, name, quantity)
			if err != nil {
				return err
			}
			out = created
			return logs.Append(ctx, &models.TransactionLogEntry{
				Action:         models.TxActionAdd,
				ItemID:         &created.ID,
				ItemName:       created.Name,
				QuantityChange: quantity,
				NewQuantity:    created.Quantity,
			})
		}

		previous := existing.Quantity
		newQuantity := previous + quantity
		if err := items.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
			return err
		}
		existing.Quantity = newQuantity
		out = existing
		return logs.Append(ctx, &models.TransactionLogEntry{
			Action:           models.TxActionAdd,
			ItemID:           &existing.ID,
			ItemName:         existing.Name,
			QuantityChange:   quantity,
			PreviousQuantity: &previous,
			NewQuantity:      newQuantity,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, out.Name)
	return out, nil
}

func (s *inventoryService) Remove(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	var out *models.InventoryItem
	err := s.inTx(ctx, func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error {
		existing, err := items.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing == nil {
			return models.ErrItemNotFound
		}
		if existing.Quantity < quantity {
			return &models.InsufficientStockError{Item: existing.Name, Available: existing.Quantity}
		}

		previous := existing.Quantity
		newQuantity := previous - quantity
		if err := items.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
			return err
		}
		existing.Quantity = newQuantity
		out = existing
		return logs.Append(ctx, &models.TransactionLogEntry{
			Action:           models.TxActionRemove,
			ItemID:           &existing.ID,
			ItemName:         existing.Name,
			QuantityChange:   -quantity,
			PreviousQuantity: &previous,
			NewQuantity:      newQuantity,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, out.Name)
	return out, nil
}

func (s *inventoryService) SetQuantity(ctx context.Context, name string, quantity int) (*models.InventoryItem, error) {
	if quantity < 0 {
		return nil, &models.InvalidQuantityError{Quantity: quantity, Reason: "quantity cannot be negative"}
	}
	var out *models.InventoryItem
	err := s.inTx(ctx, func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error {
		existing, err := items.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing == nil {
			return models.ErrItemNotFound
		}

		previous := existing.Quantity
		if err := items.UpdateQuantity(ctx, existing.ID, quantity); err != nil {
			return err
		}
		existing.Quantity = quantity
		out = existing
		return logs.Append(ctx, &models.TransactionLogEntry{
			Action:           models.TxActionUpdate,
			ItemID:           &existing.ID,
			ItemName:         existing.Name,
			QuantityChange:   quantity - previous,
			PreviousQuantity: &previous,
			NewQuantity:      quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, out.Name)
	return out, nil
}

func (s *inventoryService) Get(ctx context.Context, name string) (*models.InventoryItem, error) {
	if cached, err := s.cache.GetItem(ctx, name); err != nil {
		s.log.Warn().Err(err).Str("item", name).Msg("item cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	item, err := s.items.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ErrItemNotFound
	}
	if err := s.cache.SetItem(ctx, item, caching.DefaultTTL); err != nil {
		s.log.Warn().Err(err).Str("item", name).Msg("item cache write failed")
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	if threshold <= 0 {
		threshold = s.lowStockThreshold
	}

	items, err := s.cache.GetItemList(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("list cache read failed")
		items = nil
	}
	if items == nil {
		items, err = s.items.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetItemList(ctx, items, caching.DefaultTTL); err != nil {
			s.log.Warn().Err(err).Msg("list cache write failed")
		}
	}

	for _, item := range items {
		item.Status = item.StockStatus(threshold)
	}
	return items, nil
}

func (s *inventoryService) LowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	if threshold <= 0 {
		threshold = s.lowStockThreshold
	}
	items, err := s.items.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Status = models.StatusLowStock
	}
	return items, nil
}

func (s *inventoryService) OutOfStock(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.items.OutOfStock(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Status = models.StatusOutOfStock
	}
	return items, nil
}

func (s *inventoryService) Search(ctx context.Context, term string) ([]*models.InventoryItem, error) {
	items, err := s.items.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Status = item.StockStatus(s.lowStockThreshold)
	}
	return items, nil
}

func (s *inventoryService) Stats(ctx context.Context) (*models.InventoryStats, error) {
	return s.items.Stats(ctx, s.lowStockThreshold)
}

func (s *inventoryService) Transactions(ctx context.Context, limit int) ([]*models.TransactionLogEntry, error) {
	if limit <= 0 {
		limit = s.transactionLimit
	}
	return s.logs.ListRecent(ctx, limit)
}

func (s *inventoryService) DeleteByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var out *models.InventoryItem
	err := s.inTx(ctx, func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error {
		existing, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return models.ErrItemNotFound
		}
		if err := items.Delete(ctx, id); err != nil {
			return err
		}
		out = existing
		// ItemID stays nil: the row it pointed at is gone.
		return logs.Append(ctx, &models.TransactionLogEntry{
			Action:         models.TxActionDelete,
			ItemName:       existing.Name,
			QuantityChange: -existing.Quantity,
			NewQuantity:    0,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, out.Name)
	return out, nil
}

func (s *inventoryService) ClearAll(ctx context.Context) error {
	err := s.inTx(ctx, func(items repositories.InventoryRepository, logs repositories.TransactionLogRepository) error {
		if err := logs.DeleteAll(ctx); err != nil {
			return err
		}
		return items.DeleteAll(ctx)
	})
	if err != nil {
		return err
	}
	s.log.Warn().Msg("all inventory items and transaction history cleared")
	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed after clear")
	}
	return nil
}

func (s *inventoryService) invalidateItem(ctx context.Context, name string) {
	if err := s.cache.DeleteItem(ctx, name); err != nil {
		s.log.Warn().Err(err).Str("item", name).Msg("item cache invalidation failed")
	}
	if err := s.cache.DeleteItemList(ctx); err != nil {
		s.log.Warn().Err(err).Msg("list cache invalidation failed")
	}
}
