package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are JSON numbers in API bodies and event payloads.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a row of the products table.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductImage is one image of a product. Images are ordered by ID and the
// first one is the product's primary image.
type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	ImageURL  string `json:"image_url"`
}

// CreateProductInput holds the fields accepted when adding a product.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *int64
	ImageURLs   []string
}
