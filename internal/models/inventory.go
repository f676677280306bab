package models

import "time"

// Stock status values derived from quantity against the low-stock threshold.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// InventoryItem is a single tracked item. Names are unique case-insensitively;
// the stored name keeps the case of the first successful add.
type InventoryItem struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockStatus derives the display status for the given low-stock threshold.
// Zero is out-of-stock, not low-stock.
func (i *InventoryItem) StockStatus(threshold int) string {
	switch {
	case i.Quantity <= 0:
		return StatusOutOfStock
	case i.Quantity < threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// InventoryStats summarizes the whole inventory for the stats endpoint.
type InventoryStats struct {
	TotalItems      int `json:"total_items"`
	TotalQuantity   int `json:"total_quantity"`
	LowStockCount   int `json:"low_stock_count"`
	OutOfStockCount int `json:"out_of_stock_count"`
}
