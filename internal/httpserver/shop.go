package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/catalog"
	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/shop"
	"github.com/dxlr/storefront/internal/util"
)

type ShopHandler struct{}

// Browse runs the filter/sort pipeline over the catalog.
// Query params: search, category, price (bucket index), new, sale, sort.
func (h *ShopHandler) Browse(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shop.browse")

	criteria := shop.Criteria{
		Search:   c.QueryParam("search"),
		Category: util.Slugify(c.QueryParam("category")),
		NewOnly:  c.QueryParam("new") == "true",
		SaleOnly: c.QueryParam("sale") == "true",
		Sort:     shop.SortKey(c.QueryParam("sort")),
	}
	if raw := c.QueryParam("price"); raw != "" {
		bucket, err := strconv.Atoi(raw)
		if err != nil || bucket < 0 || bucket >= len(shop.PriceRanges) {
			l.Warn("bad_price_bucket", "status", 400, "price", raw)
			return c.JSON(http.StatusBadRequest, "invalid price bucket")
		}
		criteria.PriceBucket = &bucket
	}

	result := shop.Apply(catalog.All(), criteria)

	l.Info("shop_browsed", "count", len(result), "filtered", criteria.Active())
	return c.JSON(http.StatusOK, map[string]any{
		"data": result,
		"meta": map[string]any{
			"count":    len(result),
			"filtered": criteria.Active(),
		},
	})
}
