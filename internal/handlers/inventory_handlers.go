package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/services"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

// InventoryHandlers exposes the ledger over REST for dashboards and direct
// (non-voice) clients.
type InventoryHandlers struct {
	inventory services.InventoryService
	log       *logger.Logger
}

func NewInventoryHandlers(inventory services.InventoryService, log *logger.Logger) *InventoryHandlers {
	return &InventoryHandlers{inventory: inventory, log: log}
}

type quantityRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

func (h *InventoryHandlers) ListItems(c echo.Context) error {
	threshold := intQuery(c, "threshold", 0)
	items, err := h.inventory.List(c.Request().Context(), threshold)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(fmt.Sprintf("Found %d items", len(items)), items))
}

func (h *InventoryHandlers) AddItem(c echo.Context) error {
	req, ok := h.bindQuantity(c)
	if !ok {
		return nil
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Quantity must be positive"))
	}
	item, err := h.inventory.Add(c.Request().Context(), req.Item, req.Quantity)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Successfully added %d %s(s) to inventory", req.Quantity, item.Name), item))
}

func (h *InventoryHandlers) RemoveItem(c echo.Context) error {
	req, ok := h.bindQuantity(c)
	if !ok {
		return nil
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Quantity must be positive"))
	}
	item, err := h.inventory.Remove(c.Request().Context(), req.Item, req.Quantity)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Successfully removed %d %s(s) from inventory", req.Quantity, item.Name), item))
}

func (h *InventoryHandlers) UpdateItem(c echo.Context) error {
	req, ok := h.bindQuantity(c)
	if !ok {
		return nil
	}
	item, err := h.inventory.SetQuantity(c.Request().Context(), req.Item, req.Quantity)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Successfully updated %s quantity to %d", item.Name, item.Quantity), item))
}

func (h *InventoryHandlers) GetItem(c echo.Context) error {
	name := c.Param("name")
	item, err := h.inventory.Get(c.Request().Context(), name)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("%s has %d units", item.Name, item.Quantity), item))
}

func (h *InventoryHandlers) SearchItems(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Search term is required"))
	}
	items, err := h.inventory.Search(c.Request().Context(), term)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(fmt.Sprintf("Found %d items", len(items)), items))
}

func (h *InventoryHandlers) LowStockItems(c echo.Context) error {
	threshold := intQuery(c, "threshold", 0)
	items, err := h.inventory.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(fmt.Sprintf("Found %d low stock items", len(items)), items))
}

func (h *InventoryHandlers) OutOfStockItems(c echo.Context) error {
	items, err := h.inventory.OutOfStock(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(fmt.Sprintf("Found %d out of stock items", len(items)), items))
}

func (h *InventoryHandlers) Stats(c echo.Context) error {
	stats, err := h.inventory.Stats(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse("Inventory statistics", stats))
}

func (h *InventoryHandlers) Transactions(c echo.Context) error {
	limit := intQuery(c, "limit", 0)
	entries, err := h.inventory.Transactions(c.Request().Context(), limit)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(fmt.Sprintf("Found %d transactions", len(entries)), entries))
}

func (h *InventoryHandlers) DeleteItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid item id"))
	}
	item, err := h.inventory.DeleteByID(c.Request().Context(), id)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Deleted %s from inventory", item.Name), item))
}

func (h *InventoryHandlers) ClearInventory(c echo.Context) error {
	if err := h.inventory.ClearAll(c.Request().Context()); err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse("Inventory and transaction history cleared", nil))
}

func (h *InventoryHandlers) bindQuantity(c echo.Context) (*quantityRequest, bool) {
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request format"))
		return nil, false
	}
	if req.Item == "" {
		_ = c.JSON(http.StatusBadRequest, models.ErrorResponse("Item name is required"))
		return nil, false
	}
	return &req, true
}

// serviceError maps ledger errors onto HTTP status codes; anything
// unrecognized is a storage failure.
func (h *InventoryHandlers) serviceError(c echo.Context, err error) error {
	var insufficient *models.InsufficientStockError
	var invalidQty *models.InvalidQuantityError
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, models.ErrorResponse("Item not found in inventory"))
	case errors.As(err, &insufficient):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse(
			fmt.Sprintf("Insufficient stock for %s. Available: %d", insufficient.Item, insufficient.Available)))
	case errors.As(err, &invalidQty):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid quantity: "+invalidQty.Reason))
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("inventory request failed")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse("Database error occurred"))
	}
}

func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
