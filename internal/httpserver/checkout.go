package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/checkout"
	"github.com/dxlr/storefront/internal/events"
	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/session"
	"github.com/dxlr/storefront/internal/util"
)

type CheckoutHandler struct {
	Sessions *session.Manager
	Producer *events.Producer
	Delay    time.Duration
}

type checkoutView struct {
	Step         checkout.Step           `json:"step"`
	Shipping     checkout.ShippingMethod `json:"shipping"`
	ShippingCost float64                 `json:"shipping_cost"`
	Subtotal     float64                 `json:"subtotal"`
	Total        float64                 `json:"total"`
	TotalDisplay string                  `json:"total_display"`
	Confirmation string                  `json:"confirmation,omitempty"`
}

func (h *CheckoutHandler) view(s *session.Session) checkoutView {
	f := s.Checkout(h.Delay)
	return checkoutView{
		Step:         f.Step(),
		Shipping:     f.Shipping(),
		ShippingCost: f.ShippingCost(),
		Subtotal:     s.Cart.Subtotal(),
		Total:        f.Total(),
		TotalDisplay: util.FormatPrice(f.Total()),
		Confirmation: f.Confirmation(),
	}
}

// emptyCartRedirect is the notice the flow falls back to whenever the
// cart is empty before completion.
func emptyCartRedirect(c echo.Context) error {
	return c.JSON(http.StatusConflict, map[string]any{
		"error":    "cart is empty",
		"redirect": "/shop",
	})
}

func checkoutError(c echo.Context, l interface{ Warn(string, ...any) }, err error) error {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return emptyCartRedirect(c)
	case errors.Is(err, checkout.ErrValidation):
		l.Warn("checkout_validation_failed", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrWrongStep):
		l.Warn("checkout_wrong_step", "status", 409, "error", err)
		return c.JSON(http.StatusConflict, err.Error())
	default:
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
}

func (h *CheckoutHandler) GetState(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	f := s.Checkout(h.Delay)
	if f.Blocked() {
		return emptyCartRedirect(c)
	}
	return c.JSON(http.StatusOK, h.view(s))
}

func (h *CheckoutHandler) SubmitInformation(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.information")
	s := resolveSession(c, h.Sessions)

	var info checkout.Information
	if err := c.Bind(&info); err != nil {
		l.Warn("information_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := s.Checkout(h.Delay).SubmitInformation(info); err != nil {
		return checkoutError(c, l, err)
	}
	l.Info("information_submitted")
	return c.JSON(http.StatusOK, h.view(s))
}

func (h *CheckoutHandler) SelectShipping(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.shipping")
	s := resolveSession(c, h.Sessions)

	var req struct {
		Method string `json:"method"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("shipping_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := s.Checkout(h.Delay).SelectShipping(checkout.ShippingMethod(req.Method)); err != nil {
		return checkoutError(c, l, err)
	}
	l.Info("shipping_selected", "method", req.Method)
	return c.JSON(http.StatusOK, h.view(s))
}

func (h *CheckoutHandler) Back(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.back")
	s := resolveSession(c, h.Sessions)

	var req struct {
		To string `json:"to"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("back_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := s.Checkout(h.Delay).Back(checkout.Step(req.To)); err != nil {
		return checkoutError(c, l, err)
	}
	return c.JSON(http.StatusOK, h.view(s))
}

// Submit runs the simulated payment. It has no failure path: once the
// delay elapses the order is complete.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")
	s := resolveSession(c, h.Sessions)

	f := s.Checkout(h.Delay)
	items := s.Cart.Items()
	total := f.Total()

	code, err := f.Submit(ctx)
	if err != nil {
		return checkoutError(c, l, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(pubCtx, s.ID, map[string]any{
		"type":         "order_submitted",
		"session":      s.ID,
		"confirmation": code,
		"total":        total,
		"items":        items,
	}); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	l.Info("order_submitted", "confirmation", code)
	return c.JSON(http.StatusOK, h.view(s))
}

// Reset discards a completed flow so the session can shop again.
func (h *CheckoutHandler) Reset(c echo.Context) error {
	s := resolveSession(c, h.Sessions)
	s.ResetCheckout()
	return c.NoContent(http.StatusNoContent)
}
