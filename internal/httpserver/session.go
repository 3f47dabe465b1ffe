package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dxlr/storefront/internal/session"
)

const sessionCookie = "sid"

// resolveSession returns the visitor's session, minting the sid cookie
// on first touch.
func resolveSession(c echo.Context, m *session.Manager) *session.Session {
	var id string
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		id = ck.Value
	} else {
		id = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return m.Get(c.Request().Context(), id)
}
