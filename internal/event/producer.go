package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// TopicProductCreated receives one event per product added to the catalog.
const TopicProductCreated = "catalog.product.created"

const (
	AggregateTypeProduct = "product"
	SourceStorefront     = "storefront"
)

// ProductCreatedData is the payload of a catalog.product.created event.
type ProductCreatedData struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category_id,omitempty"`
}

// Publisher is the subset of pkg/kafka.Producer used here.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Producer publishes catalog events.
type Producer struct {
	kafka  Publisher
	logger *slog.Logger
}

// NewProducer creates a catalog event producer.
func NewProducer(kafka Publisher, logger *slog.Logger) *Producer {
	return &Producer{kafka: kafka, logger: logger}
}

// PublishProductCreated publishes a catalog.product.created event for product.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  product.CategoryID,
	}

	evt, err := pkgkafka.NewEvent(TopicProductCreated, strconv.FormatInt(product.ID, 10), AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create product created event: %w", err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		evt.WithCorrelationID(id)
	}
	if userID := logger.UserIDFromContext(ctx); userID != "" {
		evt.WithMetadata("created_by", userID)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, evt); err != nil {
		return fmt.Errorf("publish product created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product created event",
		slog.Int64("product_id", product.ID),
		slog.String("event_id", evt.EventID),
	)
	return nil
}
