package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxlr/storefront/internal/catalog"
)

type listResponse struct {
	Data []catalog.Product `json:"data"`
	Meta map[string]any    `json:"meta"`
}

func TestGetProductsPagination(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/products?page=1&size=4", nil)
	require.NoError(t, env.Products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[listResponse](t, rec)
	require.Len(t, resp.Data, 4)
	require.Equal(t, float64(10), resp.Meta["total"])
	require.Equal(t, true, resp.Meta["has_next"])
	require.Equal(t, false, resp.Meta["has_prev"])
}

func TestGetProductsLastPage(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/products?page=3&size=4", nil)
	require.NoError(t, env.Products.GetProducts(c))

	resp := decode[listResponse](t, rec)
	require.Len(t, resp.Data, 2)
	require.Equal(t, false, resp.Meta["has_next"])
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/products/002", nil)
	c.SetParamNames("id")
	c.SetParamValues("002")
	require.NoError(t, env.Products.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[catalog.Product](t, rec)
	require.Equal(t, "Premium Wool Overcoat", p.Name)
	require.Equal(t, float64(3600), p.SalePrice)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/products/404", nil)
	c.SetParamNames("id")
	c.SetParamValues("404")
	require.NoError(t, env.Products.GetProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFeatured(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/products/featured", nil)
	require.NoError(t, env.Products.GetFeatured(c))

	for _, p := range decode[[]catalog.Product](t, rec) {
		require.True(t, p.Featured)
	}
}

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSON(http.MethodGet, "/api/v1/categories", nil)
	require.NoError(t, env.Products.GetCategories(c))

	cats := decode[[]catalog.Category](t, rec)
	require.Len(t, cats, 4)
}
