package view

import "github.com/utafrali/storefront/internal/domain"

// PlaceholderImage is shown for products without images.
const PlaceholderImage = "/images/placeholder.png"

const (
	HomeFeaturedCount    = 4
	HomeNewArrivalsCount = 3
)

// HomePage is the view model of the landing page.
type HomePage struct {
	NewArrivals  []domain.ProductCard `json:"new_arrivals"`
	Featured     []domain.ProductCard `json:"featured"`
	Testimonial  Testimonial          `json:"-"`
	Testimonials Carousel             `json:"-"`
}

// NewHomePage slices the newest products into the two home page rails.
// Both rails start from the newest product.
func NewHomePage(newest []domain.ProductCard, testimonial int) HomePage {
	idx := ClampImageIndex(testimonial, len(testimonials))
	return HomePage{
		NewArrivals: head(newest, HomeNewArrivalsCount),
		Featured:    head(newest, HomeFeaturedCount),
		Testimonial: testimonials[idx],
		Testimonials: Carousel{
			Current: idx,
			Prev:    PrevTestimonial(idx, len(testimonials)),
			Next:    NextTestimonial(idx, len(testimonials)),
		},
	}
}

func head(cards []domain.ProductCard, n int) []domain.ProductCard {
	if len(cards) < n {
		n = len(cards)
	}
	out := make([]domain.ProductCard, n)
	copy(out, cards)
	return out
}

// ProductsPage is the view model of the shop listing.
type ProductsPage struct {
	Products []domain.ProductCard `json:"products"`
}

// ProductPage is the view model of a product detail page. ImageIndex and
// Quantity carry the gallery and cart selector state across reloads.
type ProductPage struct {
	Product    *domain.ProductDetail `json:"product"`
	ImageIndex int                   `json:"-"`
	Quantity   int                   `json:"-"`
}

// NewProductPage bounds the requested gallery index and quantity.
func NewProductPage(detail *domain.ProductDetail, image, quantity int) ProductPage {
	return ProductPage{
		Product:    detail,
		ImageIndex: ClampImageIndex(image, len(detail.Images)),
		Quantity:   ClampQuantity(quantity, detail.Stock),
	}
}

// CurrentImage is the gallery image being shown.
func (p ProductPage) CurrentImage() string {
	if len(p.Product.Images) == 0 {
		return PlaceholderImage
	}
	return p.Product.Images[p.ImageIndex].ImageURL
}

// DecQuantity and IncQuantity are the quantity selector's -/+ targets.
func (p ProductPage) DecQuantity() int { return ClampQuantity(p.Quantity-1, p.Product.Stock) }

func (p ProductPage) IncQuantity() int { return ClampQuantity(p.Quantity+1, p.Product.Stock) }

// InfoPage is a static informational page.
type InfoPage struct {
	Title    string        `json:"title"`
	Intro    string        `json:"intro"`
	Sections []InfoSection `json:"sections"`
	Contact  ContactInfo   `json:"contact"`
}

// InfoSection is one headed block of an InfoPage.
type InfoSection struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// ContactInfo is the store's contact block.
type ContactInfo struct {
	Email   string `json:"email"`
	Hotline string `json:"hotline"`
	Address string `json:"address"`
}

// ErrorPage is rendered for failed HTML requests.
type ErrorPage struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	Quote  string
	Author string
}

// Carousel holds the current, previous and next positions of a cycle.
type Carousel struct {
	Current, Prev, Next int
}
