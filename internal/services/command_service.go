package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

// CommandService dispatches parsed commands to the inventory ledger and
// shapes every outcome, good or bad, into a uniform CommandResult. Domain
// failures never escape as errors; storage failures are reported as a
// generic database message after the unit of work has rolled back.
type CommandService interface {
	Execute(ctx context.Context, cmd *models.ParsedCommand) *models.CommandResult
}

type commandService struct {
	inventory InventoryService
	log       *logger.Logger
}

func NewCommandService(inventory InventoryService, log *logger.Logger) CommandService {
	return &commandService{inventory: inventory, log: log}
}

func (s *commandService) Execute(ctx context.Context, cmd *models.ParsedCommand) *models.CommandResult {
	s.log.Info().
		Str("action", string(cmd.Action)).
		Str("item", cmd.Item).
		Int("quantity", cmd.Quantity).
		Float64("confidence", cmd.Confidence).
		Msg("executing command")

	switch cmd.Action {
	case models.ActionAdd:
		if cmd.Quantity <= 0 {
			return fail("Quantity must be positive")
		}
		item, err := s.inventory.Add(ctx, cmd.Item, cmd.Quantity)
		if err != nil {
			return s.failure(cmd, err)
		}
		return ok(fmt.Sprintf("Successfully added %d %s(s) to inventory", cmd.Quantity, cmd.Item), item)

	case models.ActionRemove:
		if cmd.Quantity <= 0 {
			return fail("Quantity must be positive")
		}
		item, err := s.inventory.Remove(ctx, cmd.Item, cmd.Quantity)
		if err != nil {
			return s.failure(cmd, err)
		}
		return ok(fmt.Sprintf("Successfully removed %d %s(s) from inventory", cmd.Quantity, cmd.Item), item)

	case models.ActionUpdate:
		if cmd.Quantity < 0 {
			return fail("Quantity cannot be negative")
		}
		item, err := s.inventory.SetQuantity(ctx, cmd.Item, cmd.Quantity)
		if err != nil {
			return s.failure(cmd, err)
		}
		return ok(fmt.Sprintf("Successfully updated %s quantity to %d", cmd.Item, cmd.Quantity), item)

	case models.ActionCheck:
		item, err := s.inventory.Get(ctx, cmd.Item)
		if err != nil {
			return s.failure(cmd, err)
		}
		return ok(fmt.Sprintf("%s has %d units", item.Name, item.Quantity), item)

	case models.ActionList:
		items, err := s.inventory.List(ctx, 0)
		if err != nil {
			return s.failure(cmd, err)
		}
		return ok(fmt.Sprintf("Found %d items", len(items)), items)

	default:
		return fail(fmt.Sprintf("Invalid action: %s", cmd.Action))
	}
}

// failure maps ledger errors to user-facing messages. Unknown errors are
// storage failures and are logged with the command for diagnosis.
func (s *commandService) failure(cmd *models.ParsedCommand, err error) *models.CommandResult {
	var insufficient *models.InsufficientStockError
	var invalidQty *models.InvalidQuantityError
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return fail(fmt.Sprintf("Item %s not found in inventory", cmd.Item))
	case errors.As(err, &insufficient):
		return fail(fmt.Sprintf("Insufficient stock for %s. Available: %d", insufficient.Item, insufficient.Available))
	case errors.As(err, &invalidQty):
		return fail(fmt.Sprintf("Invalid quantity: %s", invalidQty.Reason))
	default:
		s.log.Error().Err(err).Str("action", string(cmd.Action)).Str("item", cmd.Item).Msg("command failed")
		return fail("Database error occurred")
	}
}

func ok(message string, data any) *models.CommandResult {
	return &models.CommandResult{Success: true, Message: message, Data: data}
}

func fail(message string) *models.CommandResult {
	return &models.CommandResult{Success: false, Message: message}
}
