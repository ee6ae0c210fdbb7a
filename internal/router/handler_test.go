package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/global"
)

func setupTestRouter(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitEngine()
	InitializeRoutes()
}

func doRequest(t *testing.T, method, path string) (*httptest.ResponseRecorder, global.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	Router.ServeHTTP(w, req)

	var resp global.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSearchRequiresQuery(t *testing.T) {
	setupTestRouter(t)

	w, resp := doRequest(t, http.MethodGet, "/api/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "q", resp.Errors[0].Field)
	assert.Equal(t, "missing_query", resp.Errors[0].Code)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	setupTestRouter(t)

	w, resp := doRequest(t, http.MethodGet, "/api/search?q=%20%20")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestProductListingRejectsUnknownSort(t *testing.T) {
	setupTestRouter(t)

	w, resp := doRequest(t, http.MethodGet, "/api/products/?sort=cheapest")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "sort", resp.Errors[0].Field)
	assert.Equal(t, "invalid_sort", resp.Errors[0].Code)
}
