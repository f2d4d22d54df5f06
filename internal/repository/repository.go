package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// ProductQuery selects a window of products, newest first.
type ProductQuery struct {
	// Limit caps the number of rows. Zero means no limit.
	Limit  int
	Offset int
	// CategoryID keeps only products of that category.
	CategoryID *int64
	// ExcludeID drops one product, used for "related products".
	ExcludeID *int64
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	// ListCards returns product cards ordered by created_at DESC, id DESC,
	// and the total number of rows matching the query before Limit/Offset.
	ListCards(ctx context.Context, q ProductQuery) ([]domain.ProductCard, int, error)

	// GetDetail returns the product with its category filled in. Images,
	// reviews and related products are left empty.
	GetDetail(ctx context.Context, id int64) (*domain.ProductDetail, error)

	// Create inserts a product and its images atomically.
	Create(ctx context.Context, in domain.CreateProductInput) (*domain.Product, error)
}

// ImageRepository defines product image reads.
type ImageRepository interface {
	// ListByProduct returns the product's images in insertion order.
	ListByProduct(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	// ListByProduct returns reviews newest first, with the author's name.
	ListByProduct(ctx context.Context, productID int64) ([]domain.ReviewView, error)

	// Create inserts a review and fills its ID and CreatedAt.
	Create(ctx context.Context, review *domain.Review) error
}

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)

	// GetByName returns the category with the exact name.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// Create inserts a category and fills its ID.
	Create(ctx context.Context, category *domain.Category) error
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Upsert inserts the user or updates name, password and role of the
	// user with the same email, then fills ID and CreatedAt.
	Upsert(ctx context.Context, user *domain.User) error

	// GetByEmail returns the user with the given email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
