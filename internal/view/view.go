package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageProducts = "products"
	PageProduct  = "product"
	PageInfo     = "info"
	PageError    = "error"
)

var funcs = template.FuncMap{
	"rating": FormatRating,
	"price":  FormatPrice,
	"image": func(url *string) string {
		if url == nil || *url == "" {
			return PlaceholderImage
		}
		return *url
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Renderer renders pages inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == "templates/layout.html" {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		page := name[len("templates/") : len(name)-len(".html")]
		r.pages[page] = t
	}
	return r, nil
}

type layoutData struct {
	Title string
	Data  any
}

// Render executes page with data. Output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page, title string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", layoutData{Title: title, Data: data}); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// FormatRating rounds an average rating to one decimal place for display.
func FormatRating(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', 1, 64)
}

// FormatPrice renders an amount with two decimals and a dollar sign.
func FormatPrice(p decimal.Decimal) string {
	return "$" + p.StringFixed(2)
}
