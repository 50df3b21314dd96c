package main

import (
	"log"

	_ "estimatepro/docs"
	"estimatepro/internal/adapter/http/routes"
	"estimatepro/internal/infrastructure/config"
	"estimatepro/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           EstiMate Pro API
// @version         1.0
// @description     Bathroom renovation estimates: builder accounts, pricing catalogs, client surveys and leads.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	flush, err := logging.Setup(cfg.LogLevel, cfg.LogFormat, "estimatepro-api")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer flush()

	if err := routes.Run(cfg); err != nil {
		zap.S().Errorf("[app][main] server stopped err=%v", err)
		flush()
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
