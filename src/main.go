package main

import (
	"net/http"
	"os"

	"finance-api/src/api"
	"finance-api/src/config"
	"finance-api/src/db"
	"finance-api/src/handlers"
	"finance-api/src/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "console")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	defer pool.Close()

	categories, err := db.NewCategoryCache(cfg.CategoryCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize category cache")
	}
	defer categories.Close()

	dispatcher := handlers.NewDispatcher(db.PoolAcquirer{Pool: pool}, handlers.Options{
		Categories:              categories,
		Logger:                  log,
		TransactionsLimit:       cfg.TransactionsLimit,
		RecentTransactionsLimit: cfg.RecentTransactionsLimit,
	})

	// Router
	router := api.NewRouter(dispatcher, log)

	log.Info().Str("port", cfg.Port).Msg("API server running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
