package domain

// Category groups products. A product belongs to at most one category.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryRef is the part of a category shown next to a product.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
