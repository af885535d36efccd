package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		return err
	}

	registerModules(router, db, redisClient, logger)

	return nil
}
