package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dxlr/storefront/internal/events"
	"github.com/dxlr/storefront/internal/session"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Sessions *session.Manager
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Products *ProductHandler
	Shop     *ShopHandler
	News     *NewsletterHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sessions := session.NewManager(nil, nil)
	producer := events.NewProducer("", events.TopicCart)

	return &testEnv{
		T:        t,
		E:        echo.New(),
		Sessions: sessions,
		Cart:     &CartHandler{Sessions: sessions, Producer: producer},
		Checkout: &CheckoutHandler{Sessions: sessions, Producer: producer, Delay: 0},
		Products: &ProductHandler{},
		Shop:     &ShopHandler{},
		News:     &NewsletterHandler{Delay: 0},
	}
}

// doJSON builds a request carrying the test session cookie and returns
// the recorder and echo context.
func (env *testEnv) doJSON(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "test-session"})

	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
