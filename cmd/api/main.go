package main

import (
	"log"
	"os"
	"time"

	"github.com/savindushenal/menuvibe-api/internal/app"
	"github.com/savindushenal/menuvibe-api/internal/bootstrap"
	"github.com/savindushenal/menuvibe-api/internal/middleware"

	"github.com/gin-gonic/gin"
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

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if err := app.BuildApp(r, logger); err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger,
	)
}
