package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"go-hotel/internal/api"
	"go-hotel/internal/config"
	"go-hotel/internal/db"
	"go-hotel/internal/logging"
	redisdb "go-hotel/internal/redis"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("HOTEL_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.json"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := db.Init(cfg); err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}
	logger.Info().Msg("database connected and migrated")

	rdb := redisdb.NewClient(cfg)

	r := api.SetupRouter(cfg, db.DB, rdb, logger, "./frontend/*.html")
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
