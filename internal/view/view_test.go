package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUnknownPage(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = rn.Render(rec, http.StatusOK, "nope", nil)
	assert.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestRenderWritesStatusAndBody(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	vm := NotFound{Page: Page{Title: "Page Not Found", Path: "/nope"}}

	rec := httptest.NewRecorder()
	require.NoError(t, rn.Render(rec, http.StatusNotFound, "not-found", vm))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Page Not Found!")
}
