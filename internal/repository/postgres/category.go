package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	pool database.DBTX
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool database.DBTX) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, name, description`

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) (categories []domain.Category, err error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name, id`

	ctx, end := database.TraceQuery(ctx, "ListCategories", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories = []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetByName returns the category with the exact name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (category *domain.Category, err error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	ctx, end := database.TraceQuery(ctx, "GetCategoryByName", query)
	defer func() { end(err) }()

	var c domain.Category
	if err = r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("category", name)
		}
		return nil, fmt.Errorf("get category %q: %w", name, err)
	}
	return &c, nil
}

// Create inserts a category.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (err error) {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`

	ctx, end := database.TraceQuery(ctx, "CreateCategory", query)
	defer func() { end(err) }()

	if err = r.pool.QueryRow(ctx, query, c.Name, c.Description).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "name", c.Name)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}
