package main

import (
	"log"
	_ "time/tzdata"

	_ "nelly_tech/docs"
	"nelly_tech/internal/adapter/http/routes"
	"nelly_tech/internal/infrastructure/config"
	"nelly_tech/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Nelly Tech Back Office API
// @version         1.0
// @description     Quote request intake and back office for the Nelly Tech site.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(&cfg.Log)

	routes.Run(cfg)
}
