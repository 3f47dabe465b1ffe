package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/catalog"
	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/util"
)

type ProductHandler struct{}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	all := catalog.All()
	total := len(all)

	var items []catalog.Product
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = all[offset:end]
	}

	l.Info("products_listed", "page", page, "count", len(items))
	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    offset+limit < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id := c.Param("id")
	p, ok := catalog.ByID(id)
	if !ok {
		l.Warn("product_not_found", "status", 404, "id", id)
		return c.JSON(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) GetFeatured(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Featured())
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Categories())
}
