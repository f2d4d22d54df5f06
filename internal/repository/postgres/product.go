package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// cardColumns is the ProductCard projection. The primary image is the
// lowest-id image of the product.
const cardColumns = `p.id, p.name, p.price::text, p.stock, c.name,
	(SELECT pi.image_url FROM product_images pi WHERE pi.product_id = p.id ORDER BY pi.id LIMIT 1),
	p.created_at`

// ListCards returns product cards for q with the total matching count.
func (r *ProductRepository) ListCards(ctx context.Context, q repository.ProductQuery) (cards []domain.ProductCard, total int, err error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if q.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", argIndex))
		args = append(args, *q.CategoryID)
		argIndex++
	}
	if q.ExcludeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.id <> $%d", argIndex))
		args = append(args, *q.ExcludeID)
		argIndex++
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cardColumns)
	sb.WriteString(`, count(*) OVER() AS total_count
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`)
	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString("\n\t\tORDER BY p.created_at DESC, p.id DESC")
	if q.Limit > 0 {
		fmt.Fprintf(&sb, "\n\t\tLIMIT $%d", argIndex)
		args = append(args, q.Limit)
		argIndex++
	}
	if q.Offset > 0 {
		fmt.Fprintf(&sb, " OFFSET $%d", argIndex)
		args = append(args, q.Offset)
	}
	query := sb.String()

	ctx, end := database.TraceQuery(ctx, "ListProductCards", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c     domain.ProductCard
			price string
		)
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&price,
			&c.Stock,
			&c.CategoryName,
			&c.ImageURL,
			&c.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product card: %w", err)
		}
		if c.Price, err = parsePrice(price); err != nil {
			return nil, 0, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product cards: %w", err)
	}

	if cards == nil {
		cards = []domain.ProductCard{}
	}
	return cards, total, nil
}

// GetDetail returns the product and its category.
func (r *ProductRepository) GetDetail(ctx context.Context, id int64) (detail *domain.ProductDetail, err error) {
	query := `
		SELECT p.id, p.name, p.description, p.price::text, p.stock, p.category_id, p.created_at,
		       c.id, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	ctx, end := database.TraceQuery(ctx, "GetProductDetail", query)
	defer func() { end(err) }()

	var (
		d       domain.ProductDetail
		price   string
		catID   *int64
		catName *string
	)
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&price,
		&d.Stock,
		&d.CategoryID,
		&d.CreatedAt,
		&catID,
		&catName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if d.Price, err = parsePrice(price); err != nil {
		return nil, err
	}
	if catID != nil && catName != nil {
		d.Category = &domain.CategoryRef{ID: *catID, Name: *catName}
	}
	d.Images = []domain.ProductImage{}
	d.Reviews = []domain.ReviewView{}
	d.Related = []domain.ProductCard{}
	return &d, nil
}

// Create inserts the product and its images in one transaction.
func (r *ProductRepository) Create(ctx context.Context, in domain.CreateProductInput) (product *domain.Product, err error) {
	query := `
		INSERT INTO products (name, description, price, stock, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, price::text, created_at`

	ctx, end := database.TraceQuery(ctx, "CreateProduct", query)
	defer func() { end(err) }()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create product: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	p := domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}
	var price string
	if err = tx.QueryRow(ctx, query,
		p.Name,
		p.Description,
		in.Price.String(),
		p.Stock,
		p.CategoryID,
	).Scan(&p.ID, &price, &p.CreatedAt); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return nil, apperrors.InvalidInput("category does not exist")
		case isOutOfRange(err):
			return nil, apperrors.InvalidInput("price or stock out of range")
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	if p.Price, err = parsePrice(price); err != nil {
		return nil, err
	}

	for _, url := range in.ImageURLs {
		if _, err = tx.Exec(ctx,
			"INSERT INTO product_images (product_id, image_url) VALUES ($1, $2)",
			p.ID, url,
		); err != nil {
			return nil, fmt.Errorf("insert product image: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create product: %w", err)
	}
	return &p, nil
}
