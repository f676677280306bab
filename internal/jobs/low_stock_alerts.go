package jobs

import (
	"context"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

// StockReader is the slice of the inventory service the sweep needs.
type StockReader interface {
	LowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
	OutOfStock(ctx context.Context) ([]*models.InventoryItem, error)
}

// LowStockAlertService periodically sweeps the ledger for items running low
// and surfaces them in the logs. Voice clients only hear about stock levels
// when they ask; this sweep catches what nobody asked about.
type LowStockAlertService struct {
	inventory StockReader
	log       *logger.Logger
	threshold int
}

func NewLowStockAlertService(inventory StockReader, log *logger.Logger, threshold int) *LowStockAlertService {
	return &LowStockAlertService{inventory: inventory, log: log, threshold: threshold}
}

// CheckLowStock returns items with quantity above zero but under the threshold.
func (a *LowStockAlertService) CheckLowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	return a.inventory.LowStock(ctx, a.threshold)
}

// ScheduledLowStockCheck is the gocron entry point. It logs one line per
// low-stock item and one summary line, and never fails the schedule.
func (a *LowStockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	items, err := a.CheckLowStock(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("low stock sweep failed")
		return err
	}

	outOfStock, err := a.inventory.OutOfStock(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("out of stock sweep failed")
		return err
	}

	for _, item := range items {
		a.log.Warn().
			Str("item", item.Name).
			Int("quantity", item.Quantity).
			Int("threshold", a.threshold).
			Msg("item running low")
	}
	for _, item := range outOfStock {
		a.log.Warn().Str("item", item.Name).Msg("item out of stock")
	}

	a.log.Info().
		Int("low_stock", len(items)).
		Int("out_of_stock", len(outOfStock)).
		Msg("stock sweep completed")
	return nil
}
