package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// Options controls the demo data.
type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// DefaultOptions returns the demo admin account.
func DefaultOptions() Options {
	return Options{
		AdminName:     "Admin User",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
	}
}

// Result reports what the seeder wrote or found.
type Result struct {
	Admin    *domain.User
	Category *domain.Category
	// Product is nil when the category already had products.
	Product *domain.Product
}

// Seeder loads demo data. Running it twice does not duplicate the admin,
// the category or the product.
type Seeder struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	reviews    repository.ReviewRepository
	logger     *slog.Logger
	hashCost   int
}

// NewSeeder creates a seeder over the given repositories.
func NewSeeder(
	users repository.UserRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	reviews repository.ReviewRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		users:      users,
		categories: categories,
		products:   products,
		reviews:    reviews,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Run writes the admin user, the Electronics category, a Laptop product with
// images and two reviews.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	admin, err := s.ensureAdmin(ctx, opts)
	if err != nil {
		return nil, err
	}

	category, err := s.ensureCategory(ctx, "Electronics", "Electronic products")
	if err != nil {
		return nil, err
	}

	result := &Result{Admin: admin, Category: category}

	_, total, err := s.products.ListCards(ctx, repository.ProductQuery{Limit: 1, CategoryID: &category.ID})
	if err != nil {
		return nil, fmt.Errorf("check existing products: %w", err)
	}
	if total > 0 {
		s.logger.InfoContext(ctx, "category already has products, skipping product seed",
			slog.Int64("category_id", category.ID),
			slog.Int("products", total),
		)
		return result, nil
	}

	description := "A high-performance laptop"
	product, err := s.products.Create(ctx, domain.CreateProductInput{
		Name:        "Laptop",
		Description: &description,
		Price:       decimal.RequireFromString("1200.99"),
		Stock:       50,
		CategoryID:  &category.ID,
		ImageURLs:   []string{"/images/laptop-front.jpg", "/images/laptop-side.jpg"},
	})
	if err != nil {
		return nil, fmt.Errorf("seed product: %w", err)
	}
	result.Product = product

	great, solid := "Great performance, fast delivery.", "Solid build, battery could be better."
	for _, review := range []*domain.Review{
		{ProductID: product.ID, UserID: &admin.ID, Rating: 5, Comment: &great},
		{ProductID: product.ID, Rating: 4, Comment: &solid},
	} {
		if err := s.reviews.Create(ctx, review); err != nil {
			return nil, fmt.Errorf("seed review: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "demo catalog seeded",
		slog.Int64("product_id", product.ID),
		slog.Int64("category_id", category.ID),
	)
	return result, nil
}

// ensureAdmin keeps an existing admin whose password already matches and
// upserts otherwise.
func (s *Seeder) ensureAdmin(ctx context.Context, opts Options) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, opts.AdminEmail)
	switch {
	case err == nil:
		if existing.Role == domain.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(opts.AdminPassword)) == nil {
			s.logger.InfoContext(ctx, "admin user already present",
				slog.Int64("user_id", existing.ID),
				slog.String("email", existing.Email),
			)
			return existing, nil
		}
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("find admin %q: %w", opts.AdminEmail, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		FullName: opts.AdminName,
		Email:    opts.AdminEmail,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}
	if err := s.users.Upsert(ctx, admin); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	s.logger.InfoContext(ctx, "admin user ready", slog.Int64("user_id", admin.ID), slog.String("email", admin.Email))
	return admin, nil
}

func (s *Seeder) ensureCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	category, err := s.categories.GetByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}

	category = &domain.Category{Name: name, Description: &description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("seed category %q: %w", name, err)
	}
	return category, nil
}
