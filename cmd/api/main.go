package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/caching"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/config"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/handlers"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/jobs"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/jobs/background"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/services"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/database"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cacheSvc.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache hits")
	}

	audioStore, err := services.NewMinioAudioStore(
		cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize audio store")
	}
	if err := audioStore.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Minio.Bucket).Msg("audio bucket unavailable, clips will not be archived")
	}

	inventorySvc := services.NewInventoryService(pool, cacheSvc, log,
		cfg.Inventory.LowStockThreshold, cfg.Inventory.TransactionLimit)
	commandSvc := services.NewCommandService(inventorySvc, log)

	if cfg.Speech.Engine != "mock" {
		log.Warn().Str("engine", cfg.Speech.Engine).Msg("unknown speech engine, falling back to mock")
	}
	speechSvc := services.NewMockSpeechToText(rand.New(rand.NewSource(time.Now().UnixNano())))

	voiceHandlers := handlers.NewVoiceHandlers(commandSvc, speechSvc, audioStore, log)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc, log)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	alertSvc := jobs.NewLowStockAlertService(inventorySvc, log, cfg.Inventory.LowStockThreshold)
	scheduler, err := background.NewJobScheduler(alertSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create job scheduler")
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("scheduler shutdown failed")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", healthHandlers.Health)
	e.GET("/api/health", healthHandlers.Health)

	api := e.Group("/api")
	api.POST("/voice-command", voiceHandlers.HandleVoiceCommand)

	api.GET("/inventory", inventoryHandlers.ListItems)
	api.POST("/inventory/add", inventoryHandlers.AddItem)
	api.POST("/inventory/remove", inventoryHandlers.RemoveItem)
	api.PUT("/inventory/update", inventoryHandlers.UpdateItem)
	api.GET("/inventory/item/:name", inventoryHandlers.GetItem)
	api.GET("/inventory/search", inventoryHandlers.SearchItems)
	api.GET("/inventory/low-stock", inventoryHandlers.LowStockItems)
	api.GET("/inventory/out-of-stock", inventoryHandlers.OutOfStockItems)
	api.GET("/inventory/stats", inventoryHandlers.Stats)
	api.GET("/inventory/transactions", inventoryHandlers.Transactions)
	api.DELETE("/inventory/:id", inventoryHandlers.DeleteItem)
	api.DELETE("/inventory", inventoryHandlers.ClearInventory)

	go func() {
		log.Info().Str("addr", cfg.App.Addr()).Msg("voice inventory service listening")
		if err := e.Start(cfg.App.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
