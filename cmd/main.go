package main

import (
	"os"

	"github.com/alinaharnat/healthy-eating-tracking-system/config"
	"github.com/alinaharnat/healthy-eating-tracking-system/logger"
	"github.com/alinaharnat/healthy-eating-tracking-system/routes"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	db := config.InitDB()
	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
