package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// RelatedLimit is the number of "you might also like" products on a detail page.
const RelatedLimit = 3

// CatalogService serves the read side of the catalog.
type CatalogService struct {
	products   repository.ProductRepository
	images     repository.ImageRepository
	reviews    repository.ReviewRepository
	categories repository.CategoryRepository
	logger     *slog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	products repository.ProductRepository,
	images repository.ImageRepository,
	reviews repository.ReviewRepository,
	categories repository.CategoryRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		images:     images,
		reviews:    reviews,
		categories: categories,
		logger:     logger,
	}
}

// ParseProductID converts a route parameter into a product id. Only base-10
// positive integers that fit in int64 are accepted.
func ParseProductID(raw string) (int64, error) {
	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return 0, apperrors.InvalidInput("product id must be a positive integer")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput("product id must be a positive integer")
	}
	return id, nil
}

// ListProducts returns product cards newest first. An empty catalog yields an
// empty slice.
func (s *CatalogService) ListProducts(ctx context.Context, q repository.ProductQuery) ([]domain.ProductCard, error) {
	cards, _, err := s.ListProductsPage(ctx, q)
	return cards, err
}

// ListProductsPage is ListProducts plus the number of matching products
// ignoring Limit and Offset.
func (s *CatalogService) ListProductsPage(ctx context.Context, q repository.ProductQuery) ([]domain.ProductCard, int, error) {
	if q.Limit < 0 || q.Offset < 0 {
		return nil, 0, apperrors.InvalidInput("limit and offset must not be negative")
	}

	cards, total, err := s.products.ListCards(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	if cards == nil {
		cards = []domain.ProductCard{}
	}
	return cards, total, nil
}

// GetProductDetail loads a product with its category, images, reviews,
// rating summary and related products.
func (s *CatalogService) GetProductDetail(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	detail, err := s.products.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product detail: %w", err)
	}

	images, err := s.images.ListByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	detail.Images = images

	reviews, err := s.reviews.ListByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list product reviews: %w", err)
	}
	detail.Reviews = reviews
	detail.ReviewCount = len(reviews)
	detail.AverageRating = domain.AverageRating(reviews)

	detail.Related = []domain.ProductCard{}
	if detail.CategoryID != nil {
		related, _, err := s.products.ListCards(ctx, repository.ProductQuery{
			Limit:      RelatedLimit,
			CategoryID: detail.CategoryID,
			ExcludeID:  &id,
		})
		if err != nil {
			return nil, fmt.Errorf("list related products: %w", err)
		}
		if related != nil {
			detail.Related = related
		}
	}

	if detail.Images == nil {
		detail.Images = []domain.ProductImage{}
	}
	if detail.Reviews == nil {
		detail.Reviews = []domain.ReviewView{}
	}

	s.logger.DebugContext(ctx, "product detail assembled",
		slog.Int64("product_id", id),
		slog.Int("images", len(detail.Images)),
		slog.Int("reviews", detail.ReviewCount),
		slog.Int("related", len(detail.Related)),
	)
	return detail, nil
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
