package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/caching"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/repositories"
)

// HealthHandlers reports liveness of the service and its backing stores.
type HealthHandlers struct {
	db    repositories.DBTX
	cache caching.CacheService
}

func NewHealthHandlers(db repositories.DBTX, cache caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

func (h *HealthHandlers) Health(c echo.Context) error {
	ctx := c.Request().Context()

	checks := echo.Map{"database": "ok", "cache": "ok"}
	healthy := true

	if err := h.db.QueryRow(ctx, "SELECT 1").Scan(new(int)); err != nil {
		checks["database"] = err.Error()
		healthy = false
	}
	// Cache degradation is reported but not fatal: reads fall through to
	// Postgres without it.
	if err := h.cache.Ping(ctx); err != nil {
		checks["cache"] = err.Error()
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, &models.APIResponse{
			Status:  models.StatusError,
			Message: "Service degraded",
			Data:    checks,
		})
	}
	return c.JSON(http.StatusOK, models.SuccessResponse("Voice inventory service is running", checks))
}
