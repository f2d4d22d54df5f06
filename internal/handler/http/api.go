package http

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/internal/service"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/pagination"
	"github.com/utafrali/storefront/pkg/validator"
)

const maxBodyBytes = 1 << 20

// ProductCreator adds products to the catalog.
type ProductCreator interface {
	CreateProduct(ctx context.Context, in domain.CreateProductInput) (*domain.Product, error)
}

// APIHandler serves the JSON catalog API.
type APIHandler struct {
	catalog  CatalogReader
	products ProductCreator
	logger   *slog.Logger
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(catalog CatalogReader, products ProductCreator, logger *slog.Logger) *APIHandler {
	return &APIHandler{catalog: catalog, products: products, logger: logger}
}

// --- Request DTOs ---

// CreateProductRequest is the body of POST /api/products, as JSON or as a
// form. Price accepts a JSON number or string.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"notblank"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock" validate:"omitempty,gte=0"`
	CategoryID  *int64          `json:"category_id" validate:"omitempty,gt=0"`
	ImageURLs   []string        `json:"image_urls"`
}

// CreateProductResponse is the success body of POST /api/products.
type CreateProductResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product"`
}

type createErrorResponse struct {
	Error string `json:"error"`
}

func writeCreateError(w http.ResponseWriter, status int, _, message string) {
	httputil.WriteJSON(w, status, createErrorResponse{Error: message})
}

// --- Handlers ---

// CreateProduct handles POST /api/products.
func (h *APIHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeCreateProduct(r)
	if err != nil || !req.Price.IsPositive() {
		writeCreateError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, service.MsgMissingProductInfo)
		return
	}

	in := domain.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.ImageURLs,
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}

	product, err := h.products.CreateProduct(r.Context(), in)
	if err != nil {
		status, body := httputil.ErrorBody(err)
		httputil.LogIfInternal(r, status, err, h.logger)
		writeCreateError(w, status, body.Code, body.Message)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, CreateProductResponse{Success: true, Product: product})
}

// ListProducts handles GET /api/products.
func (h *APIHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	q := repository.ProductQuery{Limit: params.PerPage, Offset: params.Offset()}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := parseCategoryID(raw)
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		q.CategoryID = &id
	}

	cards, total, err := h.catalog.ListProductsPage(r.Context(), q)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(cards, total, params))
}

// ListCategories handles GET /api/categories.
func (h *APIHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// decodeCreateProduct reads a JSON or form body and validates it.
func decodeCreateProduct(r *http.Request) (CreateProductRequest, error) {
	var req CreateProductRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := validator.DecodeAndValidate(r, &req)
		return req, err
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return req, err
		}
	} else if err := r.ParseForm(); err != nil {
		return req, err
	}

	req.Name = r.PostForm.Get("name")
	if v := strings.TrimSpace(r.PostForm.Get("description")); v != "" {
		req.Description = &v
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.PostForm.Get("price")))
	if err != nil {
		return req, err
	}
	req.Price = price

	if v := strings.TrimSpace(r.PostForm.Get("stock")); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return req, err
		}
		req.Stock = &stock
	}
	if v := strings.TrimSpace(r.PostForm.Get("category_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, err
		}
		req.CategoryID = &id
	}
	for _, key := range []string{"image_urls", "image_url"} {
		for _, v := range r.PostForm[key] {
			req.ImageURLs = append(req.ImageURLs, strings.Split(v, ",")...)
		}
	}
	err = validator.Validate(req)
	return req, err
}

func parseCategoryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput("category_id must be a positive integer")
	}
	return id, nil
}
