package shop

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShopLite/internal/catalog"
	"ShopLite/internal/view"
)

func newServer(t *testing.T) *Server {
	t.Helper()

	v, err := view.New()
	require.NoError(t, err)

	return &Server{Store: catalog.NewStore(), View: v, Log: zap.NewNop()}
}

func TestIndexEmptyStore(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Shop</title>")
	assert.Contains(t, rec.Body.String(), "No Products Found!")
}

func TestIndexListsProducts(t *testing.T) {
	s := newServer(t)
	s.Store.Add("Shirt", "/img.png", 19.99, "cotton")
	s.Store.Add("Mug", "/mug.png", 7.5, "ceramic")

	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Shirt")
	assert.Contains(t, body, "$19.99")
	assert.Contains(t, body, "cotton")
	assert.Contains(t, body, "Mug")
	assert.NotContains(t, body, "No Products Found!")
}
