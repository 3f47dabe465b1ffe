package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/util"
)

type NewsletterHandler struct {
	Delay time.Duration
}

// Subscribe simulates the signup call: a fixed delay, then success.
// It never touches cart state.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "newsletter.subscribe")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("subscribe_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if !util.ValidEmail(req.Email) {
		l.Warn("subscribe_error", "status", 400, "reason", "invalid email")
		return c.JSON(http.StatusBadRequest, "invalid email")
	}

	time.Sleep(h.Delay)

	l.Info("subscribed")
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
