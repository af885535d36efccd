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

	if err := app.RunConsumer(logger.Named("consumer")); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
