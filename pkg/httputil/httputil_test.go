package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]any{"success": true})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestWriteError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid id", apperrors.InvalidInput("invalid product id"), http.StatusBadRequest, "INVALID_INPUT", "invalid product id"},
		{"missing product", apperrors.NotFound("product", int64(9)), http.StatusNotFound, "NOT_FOUND", "product with id 9 not found"},
		{"wrapped sentinel", fmt.Errorf("get: %w", apperrors.ErrNotFound), http.StatusNotFound, "NOT_FOUND", "resource not found"},
		{"forbidden", apperrors.Forbidden("admin role required"), http.StatusForbidden, "FORBIDDEN", "admin role required"},
		{"store down", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"},
		{"internal app error", apperrors.Internal(errors.New("secret detail")), http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/product/9", nil)
			WriteError(rec, req, tt.err, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestWriteError_LogsOnlyInternal(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	WriteError(httptest.NewRecorder(), req, apperrors.InvalidInput("bad"), fallback)
	assert.Empty(t, buf.String())

	WriteError(httptest.NewRecorder(), req, errors.New("pool closed"), fallback)
	assert.Contains(t, buf.String(), "pool closed")
}

func TestWriteError_IncludesCorrelationID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/product/1", nil)
	req = req.WithContext(logger.WithCorrelationID(context.Background(), "corr-1"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, apperrors.NotFound("product", 1), nil)

	resp := decode(t, rec)
	assert.Equal(t, "corr-1", resp.Error.RequestID)
}

func TestWantsHTML(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"application/json", false},
		{"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", true},
		{"application/json, text/html", false},
		{"*/*", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", tt.accept)
		assert.Equal(t, tt.want, WantsHTML(req), "Accept=%q", tt.accept)
	}
}
