package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productInput struct {
	Name     string   `json:"name" validate:"notblank,max=200"`
	Stock    int      `json:"stock" validate:"gte=0"`
	ImageURL []string `json:"image_urls" validate:"dive,url"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(productInput{Name: "Laptop", Stock: 5, ImageURL: []string{"https://cdn.example.com/a.png"}})
	assert.NoError(t, err)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		in        productInput
		wantField string
		wantMsg   string
	}{
		{"empty name", productInput{}, "Name", "is required"},
		{"blank name", productInput{Name: "   "}, "Name", "is required"},
		{"long name", productInput{Name: strings.Repeat("x", 201)}, "Name", "must be at most 200 characters"},
		{"negative stock", productInput{Name: "Laptop", Stock: -1}, "Stock", "must be greater than or equal to 0"},
		{"bad image", productInput{Name: "Laptop", ImageURL: []string{"not a url"}}, "ImageURL[0]", "must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantMsg, valErr.Fields()[tt.wantField])
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Laptop","stock":2}`))
	var in productInput
	require.NoError(t, DecodeAndValidate(req, &in))
	assert.Equal(t, "Laptop", in.Name)

	req = httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":`))
	err := DecodeAndValidate(req, &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
