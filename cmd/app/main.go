package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/app"
)

func main() {
	// Configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
