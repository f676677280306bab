// Command seed applies the schema and loads the demo inventory so the voice
// pipeline has something to talk about.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/config"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/repositories"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/database"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

var seedItems = []struct {
	Name     string
	Quantity int
}{
	{"Laptop", 15},
	{"Mouse", 3},
	{"Keyboard", 0},
	{"Monitor", 8},
	{"Headset", 2},
	{"USB Cable", 25},
	{"HDMI Cable", 12},
	{"Webcam", 4},
	{"Microphone", 6},
	{"Speaker", 1},
}

func main() {
	reset := flag.Bool("reset", false, "wipe existing inventory and transaction history before seeding")
	schemaPath := flag.String("schema", "db/schema.sql", "path to the schema file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *schemaPath).Msg("failed to read schema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}
	log.Info().Str("path", *schemaPath).Msg("schema applied")

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	items := repositories.NewInventoryRepo(tx)
	logs := repositories.NewTransactionLogRepo(tx)

	if *reset {
		if err := logs.DeleteAll(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to clear transaction log")
		}
		if err := items.DeleteAll(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to clear inventory")
		}
		log.Warn().Msg("existing inventory and transaction history cleared")
	}

	seeded := 0
	for _, seed := range seedItems {
		existing, err := items.GetByName(ctx, seed.Name)
		if err != nil {
			log.Fatal().Err(err).Str("item", seed.Name).Msg("lookup failed")
		}
		if existing != nil {
			log.Debug().Str("item", seed.Name).Msg("already present, skipping")
			continue
		}

		created, err := items.Create(ctx, seed.Name, seed.Quantity)
		if err != nil {
			log.Fatal().Err(err).Str("item", seed.Name).Msg("create failed")
		}
		err = logs.Append(ctx, &models.TransactionLogEntry{
			Action:         models.TxActionInitialAdd,
			ItemID:         &created.ID,
			ItemName:       created.Name,
			QuantityChange: created.Quantity,
			NewQuantity:    created.Quantity,
		})
		if err != nil {
			log.Fatal().Err(err).Str("item", seed.Name).Msg("log append failed")
		}
		seeded++
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to commit seed transaction")
	}
	log.Info().Int("seeded", seeded).Int("total", len(seedItems)).Msg("seeding complete")
}
