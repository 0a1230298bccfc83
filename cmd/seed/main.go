package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/shopcart-api/config"
	"github.com/oksasatya/shopcart-api/internal/infrastructure/datastore"
	"github.com/oksasatya/shopcart-api/internal/seed"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	email := flag.String("demo-email", "", "create a demo account with this email")
	password := flag.String("demo-password", "password123", "password for the demo account")
	flag.Parse()

	ctx := context.Background()
	store, err := datastore.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open datastore: %v", err)
	}
	defer store.Close()

	res, err := seed.Run(ctx, store.Store, seed.Catalog, seed.DemoUser{
		Email:      *email,
		Password:   *password,
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.WithField("items_added", res.ItemsAdded).WithField("demo_user_created", res.UserCreated).Info("seed complete")
}
