package main

import (
	"log"

	"github.com/herculesarena/turfbooking/config"
	"github.com/herculesarena/turfbooking/internal/app"
	_ "github.com/joho/godotenv/autoload"
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
