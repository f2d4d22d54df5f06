package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// ─── Images ─────────────────────────────────────────────────────────────────

func TestImageListByProduct_InsertionOrder(t *testing.T) {
	mock := newMock(t)
	repo := NewImageRepository(mock)

	mock.ExpectQuery(`SELECT id, product_id, image_url\s+FROM product_images\s+WHERE product_id = \$1\s+ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "image_url"}).
			AddRow(int64(4), int64(1), "/front.png").
			AddRow(int64(9), int64(1), "/back.png"))

	images, err := repo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "/front.png", images[0].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageListByProduct_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewImageRepository(mock)

	mock.ExpectQuery("FROM product_images").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "image_url"}))

	images, err := repo.ListByProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

// ─── Reviews ────────────────────────────────────────────────────────────────

var reviewColumns = []string{"id", "product_id", "user_id", "rating", "comment", "created_at", "full_name"}

func TestReviewListByProduct(t *testing.T) {
	mock := newMock(t)
	repo := NewReviewRepository(mock)

	mock.ExpectQuery(`FROM reviews r\s+LEFT JOIN users u ON u.id = r.user_id\s+WHERE r.product_id = \$1\s+ORDER BY r.created_at DESC`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(reviewColumns).
			AddRow(int64(2), int64(1), int64Ptr(1), 5, strPtr("Great"), now, strPtr("Admin User")).
			AddRow(int64(1), int64(1), nilInt, 4, nilStr, now.Add(-24*time.Hour), nilStr))

	reviews, err := repo.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Admin User", *reviews[0].UserName)
	assert.Nil(t, reviews[1].UserName)
	assert.Nil(t, reviews[1].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(1), int64Ptr(3), 5, strPtr("Fast and quiet")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))

	r := &domain.Review{ProductID: 1, UserID: int64Ptr(3), Rating: 5, Comment: strPtr("Fast and quiet")}
	require.NoError(t, repo.Create(context.Background(), r))
	assert.Equal(t, int64(10), r.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewCreate_RatingOutOfRange(t *testing.T) {
	mock := newMock(t)
	repo := NewReviewRepository(mock)

	err := repo.Create(context.Background(), &domain.Review{ProductID: 1, Rating: 6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Categories ─────────────────────────────────────────────────────────────

func TestCategoryList(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery(`SELECT id, name, description FROM categories ORDER BY name`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description"}).
			AddRow(int64(2), "Books", nilStr).
			AddRow(int64(1), "Electronics", strPtr("Electronic products")))

	cats, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Books", cats[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetByName_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("FROM categories WHERE name").
		WithArgs("Garden").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "Garden")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCategoryCreate_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Electronics", nilStr).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Category{Name: "Electronics"})
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Users ──────────────────────────────────────────────────────────────────

func TestUserUpsert(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users .+ ON CONFLICT \(email\) DO UPDATE`).
		WithArgs("Admin User", "admin@example.com", "$2a$10$hash", domain.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	u := &domain.User{FullName: "Admin User", Email: "admin@example.com", Password: "$2a$10$hash", Role: domain.RoleAdmin}
	require.NoError(t, repo.Upsert(context.Background(), u))
	assert.Equal(t, int64(1), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpsert_RejectsUnknownRole(t *testing.T) {
	repo := NewUserRepository(newMock(t))
	err := repo.Upsert(context.Background(), &domain.User{Email: "x@example.com", Role: "SELLER"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestUserGetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM users\\s+WHERE email = \\$1").
		WithArgs("admin@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "role", "created_at"}).
			AddRow(int64(1), "Admin User", "admin@example.com", "$2a$10$hash", domain.RoleAdmin, now))

	u, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
