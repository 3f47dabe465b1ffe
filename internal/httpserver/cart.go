package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/cart"
	"github.com/dxlr/storefront/internal/catalog"
	"github.com/dxlr/storefront/internal/events"
	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/session"
)

type CartHandler struct {
	Sessions *session.Manager
	Producer *events.Producer
}

type cartView struct {
	Items     []cart.Item `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	ItemCount int         `json:"item_count"`
	IsOpen    bool        `json:"is_open"`
}

func viewOf(s *cart.Store) cartView {
	return cartView{
		Items:     s.Items(),
		Subtotal:  s.Subtotal(),
		ItemCount: s.ItemCount(),
		IsOpen:    s.IsOpen(),
	}
}

func (h *CartHandler) publish(c echo.Context, sid string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, sid, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "error", err)
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")
	s := resolveSession(c, h.Sessions)

	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	p, ok := catalog.ByID(req.ProductID)
	if !ok {
		l.Warn("add_item_error", "status", 404, "product_id", req.ProductID)
		return c.JSON(http.StatusNotFound, "product not found")
	}

	item := s.Cart.AddItem(ctx, p, req.Size, req.Color, req.Quantity)

	h.publish(c, s.ID, map[string]any{
		"type":     "cart_item_added",
		"session":  s.ID,
		"key":      item.Key,
		"quantity": item.Quantity,
	})
	l.Info("item_added", "key", item.Key, "quantity", item.Quantity)
	return c.JSON(http.StatusCreated, viewOf(s.Cart))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")
	s := resolveSession(c, h.Sessions)

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	key := c.Param("key")
	s.Cart.UpdateQuantity(ctx, key, req.Quantity)

	h.publish(c, s.ID, map[string]any{
		"type":     "cart_quantity_updated",
		"session":  s.ID,
		"key":      key,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	s := resolveSession(c, h.Sessions)

	key := c.Param("key")
	s.Cart.RemoveItem(ctx, key)

	h.publish(c, s.ID, map[string]any{
		"type":    "cart_item_removed",
		"session": s.ID,
		"key":     key,
	})
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")
	s := resolveSession(c, h.Sessions)

	s.Cart.Clear(ctx)

	h.publish(c, s.ID, map[string]any{
		"type":    "cart_cleared",
		"session": s.ID,
	})
	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) TogglePanel(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	s.Cart.Toggle()
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) OpenPanel(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	s.Cart.Open()
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}

func (h *CartHandler) ClosePanel(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	s.Cart.Close()
	return c.JSON(http.StatusOK, viewOf(s.Cart))
}
