// Command seed loads demo catalog data and prints a development admin token.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/utafrali/storefront/internal/app"
	"github.com/utafrali/storefront/internal/auth"
	"github.com/utafrali/storefront/internal/config"
	"github.com/utafrali/storefront/internal/repository/postgres"
	"github.com/utafrali/storefront/internal/seed"
	"github.com/utafrali/storefront/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	opts := seed.DefaultOptions()
	flag.StringVar(&opts.AdminEmail, "admin-email", opts.AdminEmail, "email of the seeded admin")
	flag.StringVar(&opts.AdminPassword, "admin-password", opts.AdminPassword, "password of the seeded admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(app.ServiceName+"-seed", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := app.OpenPool(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewCategoryRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewReviewRepository(pool),
		log,
	)
	res, err := seeder.Run(ctx, opts)
	if err != nil {
		return err
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry()).
		GenerateAccessToken(res.Admin.ID, res.Admin.Email, res.Admin.Role)
	if err != nil {
		return fmt.Errorf("issue admin token: %w", err)
	}

	fmt.Printf("admin:    %s (id %d)\n", res.Admin.Email, res.Admin.ID)
	fmt.Printf("category: %s (id %d)\n", res.Category.Name, res.Category.ID)
	if res.Product != nil {
		fmt.Printf("product:  %s (id %d)\n", res.Product.Name, res.Product.ID)
	}
	fmt.Printf("token:    %s\n", token)
	return nil
}
