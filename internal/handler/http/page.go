package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/internal/view"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
)

var errRouteNotFound = &apperrors.AppError{
	Code:    apperrors.CodeNotFound,
	Message: "page not found",
	Status:  http.StatusNotFound,
	Err:     apperrors.ErrNotFound,
}

// DefaultHomeLimit is the number of newest products loaded for the home page.
const DefaultHomeLimit = 6

// CatalogReader is the read side of the catalog used by page handlers.
type CatalogReader interface {
	ListProducts(ctx context.Context, q repository.ProductQuery) ([]domain.ProductCard, error)
	ListProductsPage(ctx context.Context, q repository.ProductQuery) ([]domain.ProductCard, int, error)
	GetProductDetail(ctx context.Context, id int64) (*domain.ProductDetail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// PageHandler assembles the storefront pages.
type PageHandler struct {
	catalog   CatalogReader
	renderer  *view.Renderer
	homeLimit int
	logger    *slog.Logger
}

// NewPageHandler creates a page handler. A non-positive homeLimit falls back
// to DefaultHomeLimit.
func NewPageHandler(catalog CatalogReader, renderer *view.Renderer, homeLimit int, logger *slog.Logger) *PageHandler {
	if homeLimit <= 0 {
		homeLimit = DefaultHomeLimit
	}
	return &PageHandler{catalog: catalog, renderer: renderer, homeLimit: homeLimit, logger: logger}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	cards, err := h.catalog.ListProducts(r.Context(), repository.ProductQuery{Limit: h.homeLimit})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, view.PageHome, "", view.NewHomePage(cards, queryInt(r, "t", 0)))
}

// Products handles GET /products.
func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	q := repository.ProductQuery{}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := parseCategoryID(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		q.CategoryID = &id
	}

	cards, err := h.catalog.ListProducts(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, view.PageProducts, "Shop", view.ProductsPage{Products: cards})
}

// Product handles GET /product/{id}. The id is validated before the catalog
// is queried.
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseProductID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	detail, err := h.catalog.GetProductDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page := view.NewProductPage(detail, queryInt(r, "image", 0), queryInt(r, "qty", 1))
	h.respond(w, r, view.PageProduct, detail.Name, page)
}

// RedirectProduct handles GET /products/{id} by pointing at the canonical
// detail route.
func (h *PageHandler) RedirectProduct(w http.ResponseWriter, r *http.Request) {
	target := "/product/" + url.PathEscape(chi.URLParam(r, "id"))
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	page := view.AboutPage()
	h.respond(w, r, view.PageInfo, page.Title, page)
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	page := view.ContactPage()
	h.respond(w, r, view.PageInfo, page.Title, page)
}

// NotFound renders the error page for unknown routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, errRouteNotFound)
}

func (h *PageHandler) respond(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	if !httputil.WantsHTML(r) {
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: data})
		return
	}
	h.render(w, r, http.StatusOK, page, title, data)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page, title, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
	}
}

// fail maps err onto the error taxonomy. Store failure details are logged
// and never rendered.
func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !httputil.WantsHTML(r) {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	status, body := httputil.ErrorBody(err)
	httputil.LogIfInternal(r, status, err, h.logger)
	h.render(w, r, status, view.PageError, strconv.Itoa(status), view.ErrorPage{
		Status:  status,
		Code:    body.Code,
		Message: body.Message,
	})
}

// queryInt reads an integer query parameter, returning def when it is
// missing or malformed.
func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}
