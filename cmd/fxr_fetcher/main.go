// fxr_fetcher is the ingestion trigger: it fetches the daily feed once,
// stores the snapshot and reports the stored row count. Meant to be run from
// cron or invoked manually.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/rateserve/fx_rates_app/internal/core/ports/services"
	"github.com/rateserve/fx_rates_app/internal/core/services"
	"github.com/rateserve/fx_rates_app/internal/ecb"
	"github.com/rateserve/fx_rates_app/internal/platform/config"
	"github.com/rateserve/fx_rates_app/internal/repositories/database/pgsql"
	"github.com/rateserve/fx_rates_app/pkg/database"
)

func main() {
	force := flag.Bool("force", true, "fetch even when the store already holds rates")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	rateRepo := pgsql.NewPgxExchangeRateRepository(dbPool)
	rateService := services.NewExchangeRateService(rateRepo, ecb.NewClient(cfg.FeedURL))

	fmt.Println("Fetching exchange rates from ECB...")
	stored, err := rateService.FetchAndStoreRates(ctx, portssvc.FetchOptions{Force: *force})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch exchange rates: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully fetched and stored %d exchange rates.\n", len(stored))
}
