package main

import (
	"log"

	"github.com/savindushenal/menuvibe-api/internal/app"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunWorker(logger.Named("worker")); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}
