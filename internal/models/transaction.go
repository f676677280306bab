package models

import "time"

// Transaction log actions. initial_add marks rows written by the seeder.
const (
	TxActionAdd        = "add"
	TxActionRemove     = "remove"
	TxActionUpdate     = "update"
	TxActionDelete     = "delete"
	TxActionInitialAdd = "initial_add"
)

// TransactionLogEntry is an immutable, append-only audit record. It is written
// in the same transaction as the item mutation it describes and is never
// updated or deleted individually (only bulk-cleared with the ledger).
// ItemID is nil once the item itself has been deleted; ItemName keeps a
// denormalized snapshot so history survives the item.
type TransactionLogEntry struct {
	ID               int64     `json:"id" db:"id"`
	Action           string    `json:"action" db:"action"`
	ItemID           *int64    `json:"item_id" db:"item_id"`
	ItemName         string    `json:"item_name" db:"item_name"`
	QuantityChange   int       `json:"quantity_change" db:"quantity_change"`
	PreviousQuantity *int      `json:"previous_quantity" db:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity" db:"new_quantity"`
	Timestamp        time.Time `json:"timestamp" db:"timestamp"`
}
