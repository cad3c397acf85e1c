package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SankarPatnaik/dataflow-studio/config"
	"github.com/SankarPatnaik/dataflow-studio/logger"
	"github.com/SankarPatnaik/dataflow-studio/routes"
	"github.com/SankarPatnaik/dataflow-studio/storage"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	gin.SetMode(cfg.Mode)

	// All state is in-memory and re-seeded on every start.
	store := storage.New()
	router := routes.SetupRoutes(store, zl)

	zl.Info("listening", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		zl.Fatal("server exited", zap.Error(err))
	}
}
