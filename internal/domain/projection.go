package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCard is the list projection of a product: exactly the columns a
// listing query selects. ImageURL is the primary image, if any.
type ProductCard struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryName *string         `json:"category_name,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// InStock reports whether at least one unit is available.
func (c ProductCard) InStock() bool {
	return c.Stock > 0
}

// ProductDetail is the detail projection of a product.
type ProductDetail struct {
	Product
	Category      *CategoryRef   `json:"category,omitempty"`
	Images        []ProductImage `json:"images"`
	Reviews       []ReviewView   `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
	Related       []ProductCard  `json:"related"`
}

// PrimaryImage returns the first image URL, or nil when there are none.
func (d ProductDetail) PrimaryImage() *string {
	if len(d.Images) == 0 {
		return nil
	}
	return &d.Images[0].ImageURL
}
