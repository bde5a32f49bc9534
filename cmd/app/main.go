package main

import (
	"flag"
	"log"
	"os"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/di"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s listings=%s cache=%s", cfg.Environment, cfg.Listings.Source, cfg.Cache.Mode)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
