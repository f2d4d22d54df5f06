package domain

import "time"

// Review is a customer rating of a product. Rating is 1..5.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewView is a review as rendered on the product page, with the
// reviewer's name when the author is known.
type ReviewView struct {
	Review
	UserName *string `json:"user_name,omitempty"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is within MinRating..MaxRating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// AverageRating returns the arithmetic mean of the review ratings, or 0 when
// there are none. The result is not rounded.
func AverageRating(reviews []ReviewView) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
