package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// MsgMissingProductInfo is returned when a product is submitted without a
// name or with a price that is not a positive amount.
const MsgMissingProductInfo = "Thiếu thông tin sản phẩm"

// maxPrice is the smallest amount a NUMERIC(12,2) price column cannot hold.
var maxPrice = decimal.New(1, 10)

var productsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storefront_products_created_total",
	Help: "Products added to the catalog.",
})

// EventPublisher publishes catalog events.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, product *domain.Product) error
}

// ProductService implements product creation.
type ProductService struct {
	repo      repository.ProductRepository
	publisher EventPublisher
	logger    *slog.Logger
}

// NewProductService creates a new ProductService. publisher may be nil when
// event publishing is disabled.
func NewProductService(repo repository.ProductRepository, publisher EventPublisher, logger *slog.Logger) *ProductService {
	return &ProductService{repo: repo, publisher: publisher, logger: logger}
}

// CreateProduct validates the input and adds the product. Nothing is written
// when validation fails.
func (s *ProductService) CreateProduct(ctx context.Context, in domain.CreateProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Price.Exponent() < -2 {
		// Stored with two decimals, so check the amount that will be kept.
		in.Price = in.Price.Round(2)
	}
	if in.Name == "" || !in.Price.IsPositive() || in.Price.GreaterThanOrEqual(maxPrice) {
		return nil, apperrors.InvalidInput(MsgMissingProductInfo)
	}
	if in.Stock < 0 || in.Stock > math.MaxInt32 {
		return nil, apperrors.InvalidInput(MsgMissingProductInfo)
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		return nil, apperrors.InvalidInput(MsgMissingProductInfo)
	}

	var urls []string
	for _, u := range in.ImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	in.ImageURLs = urls

	product, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	productsCreatedTotal.Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishProductCreated(ctx, product); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish product created event",
				slog.Int64("product_id", product.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
		slog.String("price", product.Price.String()),
	)
	return product, nil
}
