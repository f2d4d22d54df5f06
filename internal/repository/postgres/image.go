package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
)

// ImageRepository implements repository.ImageRepository using PostgreSQL.
type ImageRepository struct {
	pool database.DBTX
}

// NewImageRepository creates a new PostgreSQL-backed image repository.
func NewImageRepository(pool database.DBTX) *ImageRepository {
	return &ImageRepository{pool: pool}
}

// ListByProduct returns the product's images ordered by id.
func (r *ImageRepository) ListByProduct(ctx context.Context, productID int64) (images []domain.ProductImage, err error) {
	query := `
		SELECT id, product_id, image_url
		FROM product_images
		WHERE product_id = $1
		ORDER BY id`

	ctx, end := database.TraceQuery(ctx, "ListProductImages", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	images = []domain.ProductImage{}
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product images: %w", err)
	}
	return images, nil
}
